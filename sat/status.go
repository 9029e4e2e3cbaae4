package sat

// Status is the verdict of a Solve call.
type Status int8

const (
	// Undecided means the solver ran out of budget (conflicts or time)
	// before reaching a verdict. Raising the budget (see SetMaxConflicts)
	// and solving again resumes the search.
	Undecided Status = iota

	// Sat means a model was found and recorded.
	Sat

	// Unsat means no satisfying assignment exists for the problem clauses
	// conjoined with the assumptions of the Solve call.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNDECIDED"
	}
}
