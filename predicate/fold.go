package predicate

import "errors"

// ErrNoPredicates is returned by the variadic combinators when called with an
// empty predicate list; the fold has no identity element to fall back to.
var ErrNoPredicates = errors.New("no predicates provided")

// combinator reduces two predicates to one.
type combinator[T any] func(p1, p2 Predicate[T]) Predicate[T]

// fold reduces predicates with fn, left to right in argument order.
// Returns ErrNoPredicates for an empty list.
func fold[T any](fn combinator[T], predicates []Predicate[T]) (Predicate[T], error) {
	if len(predicates) == 0 {
		return nil, ErrNoPredicates
	}

	result := predicates[0]
	for _, p := range predicates[1:] {
		result = fn(result, p)
	}

	return result, nil
}

// AndOf returns the conjunction of all predicates, folded left to right.
// Returns ErrNoPredicates for an empty list.
//
// Example:
//
//	eligible, err := predicate.AndOf(active, verified, inRegion("EU"))
//	if err != nil {
//	    return fmt.Errorf("build eligibility filter: %w", err)
//	}
func AndOf[T any](predicates ...Predicate[T]) (Predicate[T], error) {
	return fold(And[T], predicates)
}

// AllOf is an alias for AndOf.
func AllOf[T any](predicates ...Predicate[T]) (Predicate[T], error) {
	return AndOf(predicates...)
}

// OrOf returns the disjunction of all predicates, folded left to right.
// Returns ErrNoPredicates for an empty list.
func OrOf[T any](predicates ...Predicate[T]) (Predicate[T], error) {
	return fold(Or[T], predicates)
}

// NandOf returns the negation of the whole AndOf fold: the conjunction is
// built first across the entire list and negated last, never pairwise. A
// single-element list therefore yields the negation of that element.
// Returns ErrNoPredicates for an empty list.
func NandOf[T any](predicates ...Predicate[T]) (Predicate[T], error) {
	conjunction, err := fold(And[T], predicates)
	if err != nil {
		return nil, err
	}

	return conjunction.Negate(), nil
}

// NorOf returns the negation of the whole OrOf fold: the disjunction is
// built first across the entire list and negated last, never pairwise.
// Returns ErrNoPredicates for an empty list.
func NorOf[T any](predicates ...Predicate[T]) (Predicate[T], error) {
	disjunction, err := fold(Or[T], predicates)
	if err != nil {
		return nil, err
	}

	return disjunction.Negate(), nil
}

// NoneOf is an alias for NorOf.
func NoneOf[T any](predicates ...Predicate[T]) (Predicate[T], error) {
	return NorOf(predicates...)
}
