package sat

import (
	"strings"
)

type status uint8

const (
	statusDeleted   status = 0b001
	statusLearnt    status = 0b010
	statusProtected status = 0b100
)

// Clause is a disjunction of literals stored in the solver's clause store.
// Clauses are only created through the store and always contain at least two
// literals: unit clauses are applied directly to the trail and never stored.
type Clause struct {
	activity float64

	// The clause's literals. The slice contains at least two literals if the
	// clause is active, it is empty if the clause has been marked as deleted.
	// The first two literals are the watched ones.
	literals []Literal

	// This is used to speed-up the search for a new literal to watch by
	// starting the search from the position at which the previous watched
	// literal was swapped in (if such literal exists). This value must always
	// be in [2, len(literals) - 1].
	prevPos int

	statusMask status
}

func (c *Clause) isLearnt() bool {
	return c.statusMask&statusLearnt != 0
}

func (c *Clause) isDeleted() bool {
	return c.statusMask&statusDeleted != 0
}

func (c *Clause) isProtected() bool {
	return c.statusMask&statusProtected != 0
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Literals returns a copy of the clause's literals.
func (c *Clause) Literals() []Literal {
	lits := make([]Literal, len(c.literals))
	copy(lits, c.literals)
	return lits
}

// Activity returns the clause's activity score. Only meaningful for learnt
// clauses.
func (c *Clause) Activity() float64 {
	return c.activity
}

// locked returns true if the clause is currently the reason of a trail entry
// and must not be deleted.
func (c *Clause) locked(s *Solver, ref ClauseRef) bool {
	return s.reason[c.literals[0].VarID()] == ref
}

// Simplify removes the clause's literals that are False at the root level.
// It returns true if the clause is satisfied at the root level, in which case
// it can be removed from the clause database altogether. Simplify must only
// be called at the root level, once propagation has reached its fixpoint, so
// that the two watched literals are guaranteed to keep their positions.
func (c *Clause) Simplify(s *Solver) bool {
	// Detect satisfied clauses before compacting so that the literals (and
	// hence the watch keys) of a clause about to be removed are left intact.
	for _, lit := range c.literals {
		if s.LitValue(lit) == True {
			return true
		}
	}

	k := 0
	for _, lit := range c.literals {
		if s.LitValue(lit) == Unknown {
			c.literals[k] = lit
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// Propagate updates the clause's watches after literal l became true. It
// returns false if the clause is conflicting (i.e. all its literals are
// False).
func (c *Clause) Propagate(s *Solver, ref ClauseRef, l Literal) bool {
	// Make sure that the triggering literal is c.literals[1]. This simplifies
	// the rest of this function as c.literals[0] is always the literal to be
	// potentially enqueued (if all other literals are false).
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0] = c.literals[1]
		c.literals[1] = opp
	}

	// If c.literals[0] is True, then the clause is already true.
	if s.LitValue(c.literals[0]) == True {
		s.watch(ref, l, c.literals[0])
		return true
	}

	// Look for a new literal to watch, starting from the position of the
	// previous watched literal. If a True literal is found, then the clause
	// is already true and no propagation is required.

	// Reset the position to start the search from if it is not valid anymore.
	// This can happen if the previous watched literal was removed or moved
	// during a clause simplification.
	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i, lit := range c.literals[c.prevPos:] {
		if s.LitValue(lit) != False {
			c.prevPos += i
			c.literals[1] = lit
			c.literals[c.prevPos] = opp
			s.watch(ref, lit.Opposite(), c.literals[0])
			return true
		}
	}
	for i, lit := range c.literals[2:c.prevPos] {
		if s.LitValue(lit) != False {
			c.prevPos = i + 2
			c.literals[1] = lit
			c.literals[c.prevPos] = opp
			s.watch(ref, lit.Opposite(), c.literals[0])
			return true
		}
	}

	// Attempt to assign the first literal to True to satisfy the clause as all
	// other literals in literals[1:] are False.
	s.watch(ref, l, c.literals[0])
	return s.enqueue(c.literals[0], ref)
}

// explainConflict appends to outReason the assignments that falsified every
// literal of the clause.
func (c *Clause) explainConflict(outReason *[]Literal) {
	exp := (*outReason)[:0]
	for _, l := range c.literals {
		exp = append(exp, l.Opposite())
	}
	*outReason = exp
}

// explainAssign appends to outReason the assignments that forced the clause
// to propagate its first literal.
func (c *Clause) explainAssign(outReason *[]Literal) {
	exp := (*outReason)[:0]
	for _, l := range c.literals[1:] {
		exp = append(exp, l.Opposite())
	}
	*outReason = exp
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
