package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli"

	"github.com/calicosat/calico/parsers"
	"github.com/calicosat/calico/sat"
)

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "print periodic search statistics (as DIMACS comments)",
		},
		cli.BoolFlag{
			Name:  "gzip",
			Usage: "treat the instance file as gzip compressed",
		},
		cli.Int64Flag{
			Name:  "max-conflicts",
			Usage: "maximum number of conflicts allowed to solve the problem (-1 = no maximum)",
			Value: -1,
		},
		cli.StringFlag{
			Name:  "restart",
			Usage: "restart policy: luby or geometric",
			Value: "luby",
		},
		cli.BoolFlag{
			Name:  "phase-saving",
			Usage: "reuse the last assigned polarity of each variable on decisions",
		},
		cli.BoolFlag{
			Name:  "cpuprof",
			Usage: "save pprof CPU profile in cpuprof",
		},
		cli.BoolFlag{
			Name:  "memprof",
			Usage: "save pprof memory profile in memprof",
		},
	}
}

func solverOptions(c *cli.Context) (sat.Options, error) {
	options := sat.DefaultOptions
	options.Verbose = c.Bool("verbose")
	options.PhaseSaving = c.Bool("phase-saving")
	if mc := c.Int64("max-conflicts"); mc >= 0 {
		options.MaxConflicts = mc
	}
	switch r := c.String("restart"); r {
	case "luby":
		options.Restart = sat.RestartLuby
	case "geometric":
		options.Restart = sat.RestartGeometric
	default:
		return options, fmt.Errorf("unknown restart policy %q", r)
	}
	return options, nil
}

func run(c *cli.Context) error {
	if c.NArg() == 0 || c.Args().First() == "" {
		return cli.NewExitError("missing instance file", 2)
	}

	options, err := solverOptions(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	if c.Bool("cpuprof") {
		f, err := os.Create("cpuprof")
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	solver := sat.NewSolver(options)
	if err := parsers.LoadDIMACS(c.Args().First(), c.Bool("gzip"), solver); err != nil {
		return cli.NewExitError(fmt.Sprintf("could not parse instance: %s", err), 1)
	}

	fmt.Println("start solving ...")
	status := solver.Solve(nil)

	switch status {
	case sat.Sat:
		fmt.Printf("SAT\nmodel = %s\n", solver.Model())
	case sat.Unsat:
		fmt.Println("UNSAT")
	default:
		fmt.Println("c conflict or time budget exhausted before a verdict")
		return cli.NewExitError("", 3)
	}

	if c.Bool("memprof") {
		f, err := os.Create("memprof")
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "calico"
	app.Usage = "a CDCL SAT solver for DIMACS CNF instances"
	app.ArgsUsage = "<instance.cnf>"
	app.Flags = flags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
