package sat

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Model is a complete assignment of every allocated variable, indexed by
// variable ID.
type Model []bool

// Value returns the value assigned to the given literal under the model.
func (m Model) Value(l Literal) bool {
	return m[l.VarID()] == l.IsPositive()
}

// Satisfies returns true if at least one of the given literals is true under
// the model.
func (m Model) Satisfies(clause []Literal) bool {
	for _, l := range clause {
		if m.Value(l) {
			return true
		}
	}
	return false
}

// String renders the model as space-separated signed DIMACS literals in
// variable order, e.g. "1 -2 3".
func (m Model) String() string {
	lits := lo.Map(m, func(v bool, i int) string {
		if v {
			return strconv.Itoa(i + 1)
		}
		return strconv.Itoa(-(i + 1))
	})
	return strings.Join(lits, " ")
}
