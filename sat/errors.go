package sat

import "errors"

// ErrCapacityExceeded is returned when allocating a variable would exceed the
// solver's variable capacity.
var ErrCapacityExceeded = errors.New("sat: variable capacity exceeded")

// ErrInvalidClause is returned when an ingested clause refers to a variable
// that was never allocated.
var ErrInvalidClause = errors.New("sat: invalid clause")

// errContradiction signals a broken solver invariant: a decision on a
// supposedly unassigned variable failed to enqueue.
var errContradiction = errors.New("sat: decision on an assigned variable")
