package dataprocessing

import "markscli/pkg/contracts/domain"

// Accumulators is the per-run aggregation state: one StudentAccumulator per
// distinct student key, plus the order in which keys were first encountered.
// The encounter order is what makes summary ordering fully deterministic when
// two keys compare equal case-insensitively.
//
// Accumulators is owned by a single run and is not safe for concurrent use;
// the fold must stay sequential since multiple rows can target the same key.
type Accumulators struct {
	byKey map[string]*domain.StudentAccumulator
	order []string
}

// NewAccumulators creates an empty aggregation state.
func NewAccumulators() *Accumulators {
	return &Accumulators{byKey: make(map[string]*domain.StudentAccumulator)}
}

// Fold routes one classified row into the accumulator for key, creating the
// accumulator on first encounter. Valid rows append their mark in input
// order; invalid rows increment the invalid count. Every row lands in
// exactly one accumulator.
func (a *Accumulators) Fold(key string, row domain.ClassifiedRow) {
	acc, ok := a.byKey[key]
	if !ok {
		acc = &domain.StudentAccumulator{}
		a.byKey[key] = acc
		a.order = append(a.order, key)
	}
	if row.Status == domain.RowValid {
		acc.Marks = append(acc.Marks, row.Mark)
	} else {
		acc.InvalidCount++
	}
}

// Get returns the accumulator for key, or nil if the key was never folded.
func (a *Accumulators) Get(key string) *domain.StudentAccumulator {
	return a.byKey[key]
}

// Keys returns the student keys in first-encounter order.
func (a *Accumulators) Keys() []string {
	keys := make([]string, len(a.order))
	copy(keys, a.order)
	return keys
}

// Len returns the number of distinct student keys seen so far.
func (a *Accumulators) Len() int {
	return len(a.byKey)
}
