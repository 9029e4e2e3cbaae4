package sat

import (
	"fmt"
	"log"
	"sort"
	"time"
)

// Solver is a CDCL SAT solver. A Solver instance owns all of its state and
// is not safe for concurrent use: an embedding application must serialize
// calls to Solve.
type Solver struct {
	// Clause database. The store owns the clause content; constraints and
	// learnts only hold references into it.
	db          clauseStore
	constraints []ClauseRef
	learnts     []ClauseRef
	clauseInc   float64
	clauseDecay float64

	// Variable ordering.
	activities  []float64
	varInc      float64
	varDecay    float64
	order       *VarOrder
	phaseSaving bool

	// Propagation and watchers. Watch lists are indexed by the literal that
	// was assigned to true, i.e. clause c watches literal l if c must be
	// propagated when l becomes true.
	watchers  [][]watcher
	propQueue *Queue[Literal]

	// Value assigned to each literal.
	assigns []LBool

	// Trail.
	trail    []Literal
	trailLim []int
	reason   []ClauseRef
	level    []int

	// Whether the problem has reached a top level conflict.
	unsat bool

	// Assumptions of the Solve call in progress. They are replayed as
	// pseudo-decisions below all regular decisions.
	assumptions []Literal

	// Restart policy.
	restartPolicy RestartPolicy
	restartBase   int

	// Search statistics.
	TotalConflicts  int64
	TotalRestarts   int64
	TotalIterations int64
	TotalReductions int64
	learntSize      EMA
	startTime       time.Time

	// Stop conditions.
	hasStopCond bool
	maxConflict int64
	timeout     time.Duration

	// Models found so far, most recent last.
	Models []Model

	verbose bool

	// Shared by operation that needs to put variables in a set and empty that
	// set efficiently.
	seenVar *ResetSet

	// Temporary slice used in the Propagate function. The slice is re-used by
	// all Propagate calls to avoid unnecessarily allocating new slices.
	tmpWatchers []watcher

	// Temporary slice used in analyze to accumulate literals before these are
	// used to create a new learnt clause. Having one shared buffer between all
	// call reduces the overhead of having to grow each time analyze is called.
	tmpLearnts []Literal

	// Used for clauses to explain themselves.
	tmpReason []Literal
}

// watcher represents a clause attached to the watch list of a literal.
type watcher struct {
	// The watching clause to be propagated when the watched literal becomes
	// true.
	ref ClauseRef

	// Guard is one of the clause's literals. If it is true, then there is
	// no need to propagate the clause. Note that the guard literal must be
	// different from the watcher literal.
	guard Literal
}

type Options struct {
	ClauseDecay   float64
	VariableDecay float64

	// MaxConflicts bounds the total number of conflicts before the solver
	// gives up and returns Undecided (-1 = no bound).
	MaxConflicts int64

	// Timeout bounds the solving wall time (-1 = no bound). The budget is
	// checked at the top of each search iteration so the solver always stops
	// in a consistent state.
	Timeout time.Duration

	// PhaseSaving selects the polarity policy: if false, decisions always
	// try the negative polarity first; if true, they reuse the polarity the
	// variable had when it was last unassigned.
	PhaseSaving bool

	// Restart selects the restart schedule.
	Restart RestartPolicy

	// RestartBase is the conflict budget of the first restart interval.
	RestartBase int

	// Verbose enables the periodic search statistics table on stdout. All
	// lines are prefixed with "c " to remain valid DIMACS output comments.
	Verbose bool
}

var DefaultOptions = Options{
	ClauseDecay:   0.999,
	VariableDecay: 0.95,
	MaxConflicts:  -1,
	Timeout:       -1,
	PhaseSaving:   false,
	Restart:       RestartLuby,
	RestartBase:   100,
	Verbose:       false,
}

// NewDefaultSolver returns a solver configured with default options. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func NewSolver(ops Options) *Solver {
	s := &Solver{
		clauseDecay:   ops.ClauseDecay,
		varDecay:      ops.VariableDecay,
		clauseInc:     1,
		varInc:        1,
		propQueue:     NewQueue[Literal](128),
		maxConflict:   -1,
		timeout:       -1,
		seenVar:       &ResetSet{},
		phaseSaving:   ops.PhaseSaving,
		restartPolicy: ops.Restart,
		restartBase:   ops.RestartBase,
		learntSize:    NewEMA(0.999),
		verbose:       ops.Verbose,
	}

	if s.restartBase <= 0 {
		s.restartBase = DefaultOptions.RestartBase
	}
	if ops.MaxConflicts >= 0 {
		s.hasStopCond = true
		s.maxConflict = ops.MaxConflicts
	}
	if ops.Timeout >= 0 {
		s.hasStopCond = true
		s.timeout = ops.Timeout
	}

	return s
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflict >= 0 && s.maxConflict <= s.TotalConflicts {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}

	return false
}

// SetMaxConflicts replaces the solver's conflict budget. The budget bounds
// the lifetime conflict count, so the recovery path after an Undecided result
// is to raise it and call Solve again. A negative value removes the budget.
func (s *Solver) SetMaxConflicts(maxConflicts int64) {
	s.maxConflict = maxConflicts
	s.hasStopCond = s.maxConflict >= 0 || s.timeout >= 0
}

func (s *Solver) NumVariables() int {
	return len(s.assigns) / 2
}

func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

func (s *Solver) NumConstraints() int {
	return len(s.constraints)
}

func (s *Solver) NumLearnts() int {
	return len(s.learnts)
}

func (s *Solver) VarValue(x int) LBool {
	return s.assigns[PositiveLiteral(x)]
}

func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// AddVariable allocates a fresh variable and returns its ID. Variable IDs are
// dense, starting at 0.
func (s *Solver) AddVariable() int {
	index := s.NumVariables()
	if index >= maxVariables {
		panic(ErrCapacityExceeded)
	}
	s.watchers = append(s.watchers, nil)
	s.watchers = append(s.watchers, nil)
	s.reason = append(s.reason, NoClause)
	s.seenVar.Expand()

	// One for each literal.
	s.assigns = append(s.assigns, Unknown)
	s.assigns = append(s.assigns, Unknown)

	s.level = append(s.level, -1)
	s.activities = append(s.activities, 0)
	s.order.NewVar()
	return index
}

// NewLiteral allocates a fresh variable and returns its positive literal.
func (s *Solver) NewLiteral() (Literal, error) {
	if s.NumVariables() >= maxVariables {
		return -1, ErrCapacityExceeded
	}
	return PositiveLiteral(s.AddVariable()), nil
}

// NewLiteralChunk allocates n fresh variables at once and returns the chunk
// of their positive literals.
func (s *Solver) NewLiteralChunk(n int) (LiteralChunk, error) {
	if n < 0 || s.NumVariables()+n > maxVariables {
		return LiteralChunk{}, ErrCapacityExceeded
	}
	first := s.NumVariables()
	for i := 0; i < n; i++ {
		s.AddVariable()
	}
	return LiteralChunk{first: first, n: n}, nil
}

// watch registers the clause to be awaken when Literal w is assigned to true.
func (s *Solver) watch(ref ClauseRef, w Literal, guard Literal) {
	s.watchers[w] = append(s.watchers[w], watcher{
		ref:   ref,
		guard: guard,
	})
}

// unwatch removes the clause from the list of watchers of Literal w.
func (s *Solver) unwatch(ref ClauseRef, w Literal) {
	j := 0
	for i := 0; i < len(s.watchers[w]); i++ {
		if s.watchers[w][i].ref != ref {
			s.watchers[w][j] = s.watchers[w][i]
			j++
		}
	}
	s.watchers[w] = s.watchers[w][:j]
}

// ConsumeClause ingests one original (non-learnt) clause. The clause is
// sanitized first: duplicated literals are dropped, tautological clauses are
// discarded as always satisfied, and literals already False at the root level
// are removed. Ingesting an empty clause (directly or after sanitization)
// marks the whole problem unsatisfiable and short-circuits all future Solve
// calls.
func (s *Solver) ConsumeClause(literals []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("can only add clauses at the root level")
	}
	for _, l := range literals {
		if l < 0 || l.VarID() >= s.NumVariables() {
			return fmt.Errorf("%w: literal %d references an unknown variable", ErrInvalidClause, int(l))
		}
	}
	if !s.addClause(literals) {
		s.unsat = true
	}
	return nil
}

// addClause sanitizes and stores the given clause. It returns false if the
// clause is a root-level conflict (i.e. empty after sanitization).
func (s *Solver) addClause(literals []Literal) bool {
	size := len(literals)
	lits := make([]Literal, size)
	copy(lits, literals)

	seen := map[Literal]struct{}{}
	for i := size - 1; i >= 0; i-- {
		// If the opposite literal is in the clause, then the clause is
		// always true.
		if _, ok := seen[lits[i].Opposite()]; ok {
			return true
		}

		// Remove the literal if it is already present.
		if _, ok := seen[lits[i]]; ok {
			size--
			lits[i], lits[size] = lits[size], lits[i]
		}

		seen[lits[i]] = struct{}{}

		switch s.LitValue(lits[i]) {
		case True:
			return true // clause is always true
		case False:
			size--
			lits[i], lits[size] = lits[size], lits[i]
		}
	}
	lits = lits[:size]

	switch size {
	case 0:
		// Empty clauses cannot be valid.
		return false
	case 1:
		// Directly enqueue unit facts.
		return s.enqueue(lits[0], NoClause)
	default:
		ref := s.db.alloc(lits, false)
		c := s.db.get(ref)
		s.watch(ref, c.literals[0].Opposite(), c.literals[1])
		s.watch(ref, c.literals[1].Opposite(), c.literals[0])
		s.constraints = append(s.constraints, ref)
		return true
	}
}

// Clause returns the literals of the referenced clause. It is mostly useful
// for tests and debugging tools.
func (s *Solver) Clause(ref ClauseRef) []Literal {
	return s.db.get(ref).Literals()
}

// removeClause detaches the referenced clause from the watch lists and
// releases its slot in the store. If the clause is locked, its reason entry
// is cleared first so that no dangling reference survives the removal.
func (s *Solver) removeClause(ref ClauseRef) {
	c := s.db.get(ref)
	if c.locked(s, ref) {
		s.reason[c.literals[0].VarID()] = NoClause
	}
	s.unwatch(ref, c.literals[0].Opposite())
	s.unwatch(ref, c.literals[1].Opposite())
	s.db.release(ref)
}

// Simplify simplifies the clause DB as well as the problem clauses according
// to the root-level assignments. Clauses that are satisfied at the root-level
// are removed.
func (s *Solver) Simplify() bool {
	if l := s.decisionLevel(); l != 0 {
		log.Fatalf("Simplify called on non root-level: %d", l)
	}
	if s.propQueue.Size() != 0 {
		log.Fatal("propQueue should be empty when calling simplify")
	}

	if s.unsat || s.Propagate() != NoClause {
		s.unsat = true
		return false
	}

	s.simplifyRefs(&s.learnts)
	s.simplifyRefs(&s.constraints) // could be turned off

	return true
}

// simplifyRefs simplifies the referenced clauses and removes the ones that
// are already satisfied.
func (s *Solver) simplifyRefs(refsPtr *[]ClauseRef) {
	refs := *refsPtr
	j := 0
	for i := 0; i < len(refs); i++ {
		if s.db.get(refs[i]).Simplify(s) {
			s.removeClause(refs[i])
		} else {
			refs[j] = refs[i]
			j++
		}
	}
	*refsPtr = refs[:j]
}

// reduceDB removes about half of the learnt clauses, lowest activities first.
// Clauses that are the reason of a trail entry are never removed; original
// problem clauses are never touched.
func (s *Solver) reduceDB() {
	lim := s.clauseInc / float64(len(s.learnts))

	sort.Slice(s.learnts, func(i, j int) bool {
		return s.db.get(s.learnts[i]).activity < s.db.get(s.learnts[j]).activity
	})

	i, j := 0, 0
	for ; i < len(s.learnts)/2; i++ {
		if c := s.db.get(s.learnts[i]); c.locked(s, s.learnts[i]) || c.isProtected() {
			s.learnts[j] = s.learnts[i]
			j++
		} else {
			s.removeClause(s.learnts[i])
		}
	}

	for ; i < len(s.learnts); i++ {
		c := s.db.get(s.learnts[i])
		if !c.locked(s, s.learnts[i]) && !c.isProtected() && c.activity < lim {
			s.removeClause(s.learnts[i])
		} else {
			s.learnts[j] = s.learnts[i]
			j++
		}
	}

	s.learnts = s.learnts[:j]
	s.TotalReductions++
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// Solve determines the satisfiability of the consumed clauses conjoined with
// the given assumption literals. It returns Sat together with a recorded
// model (see Model), Unsat if no satisfying assignment exists under the
// assumptions, or Undecided if a conflict or time budget was exhausted first.
// Clauses learnt while solving under assumptions are kept: they are logical
// consequences of the problem clauses alone.
func (s *Solver) Solve(assumptions []Literal) Status {
	for _, l := range assumptions {
		if l < 0 || l.VarID() >= s.NumVariables() {
			panic(fmt.Sprintf("assumption %d references an unknown variable", int(l)))
		}
	}
	s.assumptions = assumptions
	defer func() { s.assumptions = nil }()

	status := Undecided
	numConflicts := s.restartBase
	numLearnts := s.NumConstraints() / 3
	s.order = NewVarOrder(s, s.NumVariables())
	s.order.phaseSaving = s.phaseSaving
	s.startTime = time.Now()

	if s.verbose {
		s.printSeparator()
		s.printSearchHeader()
		s.printSeparator()
	}

	restarts := 0
	for status == Undecided {
		budget := numConflicts
		if s.restartPolicy == RestartLuby {
			budget = int(luby(2, restarts)) * s.restartBase
		} else {
			numConflicts += numConflicts / 10
		}
		restarts++

		status = s.search(budget, numLearnts)
		numLearnts += numLearnts / 20

		if s.shouldStop() {
			break
		}
	}

	if s.verbose {
		s.printSearchStats()
		s.printSeparator()
	}

	s.cancelUntil(0)
	return status
}

// Model returns the model recorded by the last successful Solve call, or nil
// if no model has been found yet.
func (s *Solver) Model() Model {
	if len(s.Models) == 0 {
		return nil
	}
	return s.Models[len(s.Models)-1]
}

func (s *Solver) bumpClaActivity(c *Clause) {
	c.activity += s.clauseInc

	if c.activity > 1e100 {
		s.clauseInc *= 1e-100 // important to keep proportions
		for _, ref := range s.learnts {
			s.db.get(ref).activity *= 1e-100
		}
	}
}

func (s *Solver) bumpVarActivity(varID int) {
	s.activities[varID] += s.varInc

	if s.activities[varID] > 1e100 {
		s.varInc *= 1e-100 // important to keep proportions
		for i := range s.activities {
			s.activities[i] *= 1e-100
		}
	}

	s.order.Update(varID)
}

func (s *Solver) decayClaActivity() {
	s.clauseInc *= s.clauseDecay
}

func (s *Solver) decayVarActivity() {
	s.varInc *= s.varDecay
}

// Propagate runs unit propagation until its fixpoint or until a conflict is
// found, in which case the conflicting clause is returned. It returns
// NoClause if the fixpoint was reached without conflict.
func (s *Solver) Propagate() ClauseRef {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		s.tmpWatchers = s.tmpWatchers[:0]
		s.tmpWatchers = append(s.tmpWatchers, s.watchers[l]...)
		s.watchers[l] = s.watchers[l][:0]

		for i, w := range s.tmpWatchers {
			// No need to propagate the clause if its guard is true. This block
			// is not necessary for propagation to behave properly. However, it
			// helps to significantly speed-up computation by avoiding loading
			// clause (in memory) that do not need to be propagated. Note that
			// this alters the order in which clause are propagated and can thus
			// yield to different conflict analysis and learnt clauses.
			if s.LitValue(w.guard) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}

			if s.db.get(w.ref).Propagate(s, w.ref, l) {
				continue
			}

			// Constraint is conflicting, copy remaining watchers
			// and return the constraint.
			s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
			s.propQueue.Clear()
			return s.tmpWatchers[i].ref
		}
	}

	return NoClause
}

// enqueue pushes the literal on the trail with the given reason clause. It
// returns false if the literal's variable is already assigned to the opposite
// value.
func (s *Solver) enqueue(l Literal, from ClauseRef) bool {
	switch s.LitValue(l) {
	case False:
		return false // conflicting assignment
	case True:
		return true // already assigned
	default:
		// New fact, store it.
		varID := l.VarID()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[varID] = s.decisionLevel()
		s.reason[varID] = from
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		return true
	}
}

// explain returns the assignments that led to the given clause being
// conflicting (l == -1) or propagating literal l. Learnt clauses are bumped
// each time they take part in conflict analysis.
func (s *Solver) explain(ref ClauseRef, l Literal) []Literal {
	c := s.db.get(ref)
	if c.isLearnt() {
		s.bumpClaActivity(c)
	}
	if l == -1 {
		c.explainConflict(&s.tmpReason)
	} else {
		c.explainAssign(&s.tmpReason)
	}
	return s.tmpReason
}

// analyze derives a learnt clause from the given conflict following the first
// unique implication point (1-UIP) scheme. It returns the learnt clause, with
// the asserting literal first, and the level to backjump to. The activity of
// every variable involved in the resolution is bumped.
func (s *Solver) analyze(confl ClauseRef) ([]Literal, int) {
	// Current number of "implication" nodes encountered in the exploration of
	// the decision level. A value of 0 indicates that the exploration has
	// reached a single implication point.
	nImplicationPoints := 0

	// Empty the buffer of literals in which the learnt clause will be stored.
	// Note that the first literal is reserved for the FUIP which is set at the
	// end of this function.
	s.tmpLearnts = s.tmpLearnts[:0]
	s.tmpLearnts = append(s.tmpLearnts, -1)

	// Next literal to look at. This is used to iterate over the trail without
	// actually undoing the literal assignments.
	nextLiteral := len(s.trail) - 1

	l := Literal(-1) // unknown literal used to represent the conflict
	s.seenVar.Clear()
	backtrackLevel := 0

	for {
		for _, q := range s.explain(confl, l) {
			v := q.VarID()
			if s.seenVar.Contains(v) {
				continue
			}

			s.seenVar.Add(v)
			s.bumpVarActivity(v)
			if s.level[v] == s.decisionLevel() {
				nImplicationPoints++
				continue
			}

			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if level := s.level[v]; level > backtrackLevel {
				backtrackLevel = level
			}
		}

		// Select next literal to look at.
		for {
			l = s.trail[nextLiteral]
			nextLiteral--
			v := l.VarID()
			confl = s.reason[v]
			if s.seenVar.Contains(v) {
				break
			}
		}

		nImplicationPoints--
		if nImplicationPoints <= 0 {
			break
		}
	}

	// Add literal corresponding to the FUIP.
	s.tmpLearnts[0] = l.Opposite()

	return s.tmpLearnts, backtrackLevel
}

// record inserts the learnt clause in the clause database and enqueues its
// asserting literal (which must be first). The caller must have backtracked
// to the clause's assertion level already.
func (s *Solver) record(learnt []Literal) {
	ref := NoClause
	if len(learnt) > 1 {
		ref = s.newLearntClause(learnt)
		s.learnts = append(s.learnts, ref)
	}
	s.enqueue(learnt[0], ref)
}

// newLearntClause stores the learnt clause and attaches its watches. The
// second watch is set to a literal of the highest decision level so that the
// clause wakes up as late as possible on backtracks.
func (s *Solver) newLearntClause(learnt []Literal) ClauseRef {
	ref := s.db.alloc(learnt, true)
	c := s.db.get(ref)

	// Binary clauses are cheap to propagate and prune a lot of the search
	// space, keep them out of reach of reduceDB.
	if len(learnt) == 2 {
		c.statusMask |= statusProtected
	}

	maxLevel := -1
	wl := -1
	for i := 1; i < len(c.literals); i++ {
		if level := s.level[c.literals[i].VarID()]; level > maxLevel {
			maxLevel = level
			wl = i
		}
	}
	c.literals[wl], c.literals[1] = c.literals[1], c.literals[wl]

	s.bumpClaActivity(c)

	s.watch(ref, c.literals[0].Opposite(), c.literals[1])
	s.watch(ref, c.literals[1].Opposite(), c.literals[0])
	return ref
}

// search runs the propagate/decide loop until the problem is solved, the
// restart conflict budget is exhausted (Undecided), or a global stop
// condition triggers.
func (s *Solver) search(nConflicts int, nLearnts int) Status {
	if s.unsat {
		return Unsat
	}

	s.TotalRestarts++
	conflictCount := 0

	for !s.shouldStop() {
		if s.verbose && s.TotalIterations%10000 == 0 {
			s.printSearchStats()
		}
		s.TotalIterations++

		if conflict := s.Propagate(); conflict != NoClause {
			conflictCount++
			s.TotalConflicts++

			if s.decisionLevel() == 0 {
				s.unsat = true
				return Unsat
			}

			learnt, backtrackLevel := s.analyze(conflict)
			s.learntSize.Add(float64(len(learnt)))
			s.cancelUntil(backtrackLevel)

			s.record(learnt)

			s.decayClaActivity()
			s.decayVarActivity()
			continue
		}

		// No Conflict
		// -----------

		if s.decisionLevel() == 0 {
			s.Simplify()
			if s.unsat {
				return Unsat
			}
		}

		if len(s.learnts)-s.NumAssigns() >= nLearnts {
			s.reduceDB()
		}

		// Replay the assumptions as pseudo-decisions below all regular
		// decisions. Assumptions that already hold only open an empty level
		// to keep decision levels aligned with assumption indexes.
		if s.decisionLevel() < len(s.assumptions) {
			switch p := s.assumptions[s.decisionLevel()]; s.LitValue(p) {
			case True:
				s.trailLim = append(s.trailLim, len(s.trail))
			case False:
				return Unsat // conflicts with the clauses or other assumptions
			default:
				s.assume(p)
			}
			continue
		}

		if s.NumAssigns() == s.NumVariables() { // solution found
			s.saveModel()
			s.cancelUntil(0)
			return Sat
		}

		if conflictCount > nConflicts {
			s.cancelUntil(0)
			return Undecided
		}

		l := s.order.Select()
		if !s.assume(l) {
			panic(errContradiction)
		}
	}

	return Undecided
}

func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()

	s.order.Undo(v)
	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[v] = NoClause
	s.level[v] = -1

	s.trail = s.trail[:len(s.trail)-1]
}

// assume opens a new decision level and enqueues the literal as a decision.
func (s *Solver) assume(l Literal) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	return s.enqueue(l, NoClause)
}

func (s *Solver) cancel() {
	c := len(s.trail) - s.trailLim[len(s.trailLim)-1]
	for ; c != 0; c-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
}

// cancelUntil backtracks the trail to the given decision level, undoing the
// assignments in reverse trail order.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}

func (s *Solver) saveModel() {
	model := make(Model, s.NumVariables())
	for i := range model {
		lb := s.VarValue(i)
		if lb == Unknown {
			panic("not a model")
		}
		model[i] = lb == True
	}
	s.Models = append(s.Models, model)
}

func (s *Solver) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	fmt.Println("c            time     iterations      conflicts       restarts        learnts")
}

func (s *Solver) printSearchStats() {
	fmt.Printf(
		"c %14.3fs %14d %14d %14d %14d (avg size %.1f)\n",
		time.Since(s.startTime).Seconds(),
		s.TotalIterations,
		s.TotalConflicts,
		s.TotalRestarts,
		len(s.learnts),
		s.learntSize.Val())
}
