package feedback

import "slices"

// Accepted tracks which checkpoint indexes the learner has accepted.
// The zero value is an empty set.
type Accepted struct {
	indexes []int
}

// Has reports whether checkpoint i is accepted.
func (a Accepted) Has(i int) bool {
	return slices.Contains(a.indexes, i)
}

// Toggle flips the accepted state of checkpoint i.
func (a Accepted) Toggle(i int) Accepted {
	if a.Has(i) {
		return Accepted{indexes: slices.DeleteFunc(slices.Clone(a.indexes), func(x int) bool { return x == i })}
	}
	next := append(slices.Clone(a.indexes), i)
	slices.Sort(next)
	return Accepted{indexes: next}
}

// Removed returns the set after checkpoint i was removed from the model:
// i is dropped and later indexes shift down by one.
func (a Accepted) Removed(i int) Accepted {
	var next []int
	for _, x := range a.indexes {
		switch {
		case x < i:
			next = append(next, x)
		case x > i:
			next = append(next, x-1)
		}
	}
	return Accepted{indexes: next}
}

// Len returns the number of accepted checkpoints.
func (a Accepted) Len() int {
	return len(a.indexes)
}

// Indexes returns the accepted indexes in ascending order.
func (a Accepted) Indexes() []int {
	return slices.Clone(a.indexes)
}
