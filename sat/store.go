package sat

import (
	"fmt"
	"math"
)

// ClauseRef is a stable handle to a clause in the solver's clause store. All
// cross references between the store, the watch lists, and the trail reasons
// are expressed as ClauseRef values rather than pointers.
type ClauseRef uint32

// NoClause is the null clause reference. It is used as the reason of decision
// and assumption literals.
const NoClause ClauseRef = math.MaxUint32

// clauseStore owns the content of every clause in a contiguous arena indexed
// by ClauseRef. Slots of deleted clauses are recycled through a free list so
// that handles stay dense and the arena does not grow unboundedly across
// clause database reductions.
type clauseStore struct {
	arena []Clause
	free  []ClauseRef
}

// alloc stores a new clause holding a copy of the given literals and returns
// its reference. Recycled slots keep their literal slice to spare an
// allocation when the new clause fits in its capacity.
func (st *clauseStore) alloc(literals []Literal, learnt bool) ClauseRef {
	var ref ClauseRef
	if n := len(st.free); n > 0 {
		ref = st.free[n-1]
		st.free = st.free[:n-1]
	} else {
		if len(st.arena) >= int(NoClause) {
			panic("clause store capacity exceeded")
		}
		ref = ClauseRef(len(st.arena))
		st.arena = append(st.arena, Clause{})
	}

	c := &st.arena[ref]
	c.statusMask = 0
	if learnt {
		c.statusMask = statusLearnt
	}
	c.activity = 0
	c.prevPos = 2
	c.literals = append(c.literals[:0], literals...)

	return ref
}

// get returns the clause associated with the given reference. The reference
// must be valid: accessing a released slot is a bug in the caller.
func (st *clauseStore) get(ref ClauseRef) *Clause {
	c := &st.arena[ref]
	if c.isDeleted() {
		panic(fmt.Sprintf("access to deleted clause %d", ref))
	}
	return c
}

// release marks the clause as deleted and recycles its slot. The caller is
// responsible for removing every reference to the clause (watch lists and
// trail reasons) before releasing it.
func (st *clauseStore) release(ref ClauseRef) {
	c := &st.arena[ref]
	c.statusMask |= statusDeleted
	c.literals = c.literals[:0]
	st.free = append(st.free, ref)
}

// count returns the number of live clauses in the store.
func (st *clauseStore) count() int {
	return len(st.arena) - len(st.free)
}
