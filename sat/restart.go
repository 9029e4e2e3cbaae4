package sat

// RestartPolicy selects the schedule used to compute the conflict budget of
// each restart interval. Both policies are deterministic.
type RestartPolicy int8

const (
	// RestartLuby follows the Luby sequence (1, 1, 2, 1, 1, 2, 4, ...)
	// scaled by Options.RestartBase.
	RestartLuby RestartPolicy = iota

	// RestartGeometric grows the conflict budget by 10% after each restart,
	// starting from Options.RestartBase.
	RestartGeometric
)

// luby returns the restart factor y^k where k is the exponent of the x-th
// element of the Luby sequence. With y = 2 this is exactly the Luby value
// (1, 1, 2, 1, 1, 2, 4, 1, ...).
func luby(y float64, x int) float64 {
	var seq, size int

	for size, seq = 1, 0; size < x+1; seq, size = seq+1, 2*size+1 {
	}

	for size-1 != x {
		size = (size - 1) >> 1
		seq--
		x = x % size
	}

	f := 1.0
	for ; seq > 0; seq-- {
		f *= y
	}
	return f
}
