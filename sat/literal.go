package sat

import "fmt"

// maxVariables bounds the number of variables a solver can allocate. The
// limit keeps literal indexes well within the int range on every platform.
const maxVariables = 1 << 30

// Literal represents a literal, which either represent a boolean variable or
// its negation. Literals are dense: variable v maps to literals 2v (positive)
// and 2v+1 (negative), which makes them directly usable as slice indexes.
type Literal int

// PositiveLiteral returns the literal representing the variable itself.
func PositiveLiteral(varID int) Literal {
	return Literal(varID * 2)
}

// NegativeLiteral returns the literal representing the variable's negation.
func NegativeLiteral(varID int) Literal {
	return PositiveLiteral(varID).Opposite()
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represent the value of
// its boolean variable (i.e. not its negation)
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	} else {
		return fmt.Sprintf("!%d", l.VarID())
	}
}

// LiteralChunk is a contiguous range of variables allocated together. It
// gives access to the positive literal of each variable in the range.
type LiteralChunk struct {
	first int
	n     int
}

// Len returns the number of variables in the chunk.
func (c LiteralChunk) Len() int {
	return c.n
}

// At returns the positive literal of the i-th variable of the chunk. It
// panics if i is out of range.
func (c LiteralChunk) At(i int) Literal {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("chunk index %d out of range [0, %d)", i, c.n))
	}
	return PositiveLiteral(c.first + i)
}

// Literals returns the positive literals of all the chunk's variables.
func (c LiteralChunk) Literals() []Literal {
	lits := make([]Literal, c.n)
	for i := range lits {
		lits[i] = PositiveLiteral(c.first + i)
	}
	return lits
}
