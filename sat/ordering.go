package sat

import (
	"log"

	"github.com/rhartert/yagh"
)

// VarOrder selects decision variables by decreasing activity using an
// int-keyed heap. Depending on the polarity policy, the returned literal is
// either always the negative one or the saved phase of the variable's last
// assignment.
type VarOrder struct {
	size        int
	solver      *Solver
	phase       []LBool
	phaseSaving bool
	heap        *yagh.IntMap[float64]
}

func NewVarOrder(s *Solver, nVar int) *VarOrder {
	vo := &VarOrder{
		size:        nVar,
		solver:      s,
		phase:       make([]LBool, nVar),
		phaseSaving: false,
		heap:        yagh.New[float64](nVar),
	}

	vo.UpdateAll()
	return vo
}

func (vo *VarOrder) NewVar() {}

func (vo *VarOrder) Update(varID int) {
	if vo.heap.Contains(varID) {
		vo.Undo(varID)
	}
}

func (vo *VarOrder) UpdateAll() {
	for i := 0; i < vo.size; i++ {
		vo.Undo(i)
	}
}

// Undo re-inserts the variable in the heap. It must be called whenever the
// variable becomes unassigned, in reverse trail order, so that the saved
// phase reflects the last assignment.
func (vo *VarOrder) Undo(varID int) {
	if vo.phaseSaving {
		vo.phase[varID] = vo.solver.VarValue(varID)
	}

	act := vo.solver.activities[varID]
	vo.heap.Put(varID, -act)
}

// Select returns the decision literal for the unassigned variable with the
// highest activity.
func (vo *VarOrder) Select() Literal {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			log.Fatalln("empty heap")
		}
		if vo.solver.VarValue(next.Elem) != Unknown {
			continue // already assigned
		}

		switch vo.phase[next.Elem] {
		case True:
			return PositiveLiteral(next.Elem)
		case False:
			return NegativeLiteral(next.Elem)
		default:
			return NegativeLiteral(next.Elem)
		}
	}
}
