package predicate

// Predicate maps a value of type T to a boolean. Implementations must be
// side effect free; combinators are allowed to invoke them any number of
// times and in any order.
type Predicate[T any] func(T) bool

// Test evaluates the predicate against value.
func (p Predicate[T]) Test(value T) bool {
	return p(value)
}

// And returns a predicate that is true iff both p and q are true.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return p(value) && q(value)
	}
}

// Or returns a predicate that is true iff p or q is true.
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return p(value) || q(value)
	}
}

// Negate returns the logical negation of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(value T) bool {
		return !p(value)
	}
}

// True returns a predicate that is true for any input.
func True[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// False returns a predicate that is false for any input.
func False[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// From lifts a bare function reference into a Predicate so the combinator
// methods become available.
//
// Example:
//
//	keep := predicate.From(strconv.CanBackquote).Negate()
func From[T any](p func(T) bool) Predicate[T] {
	return p
}

// Not returns the logical negation of p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return p.Negate()
}

// And returns a predicate that is true iff both p1 and p2 are true.
func And[T any](p1, p2 Predicate[T]) Predicate[T] {
	return p1.And(p2)
}

// All is an alias for And.
func All[T any](p1, p2 Predicate[T]) Predicate[T] {
	return p1.And(p2)
}

// Or returns a predicate that is true iff p1 or p2 is true.
func Or[T any](p1, p2 Predicate[T]) Predicate[T] {
	return p1.Or(p2)
}

// Nand returns the negation of And(p1, p2).
func Nand[T any](p1, p2 Predicate[T]) Predicate[T] {
	return p1.And(p2).Negate()
}

// Nor returns the negation of Or(p1, p2).
func Nor[T any](p1, p2 Predicate[T]) Predicate[T] {
	return p1.Or(p2).Negate()
}

// None is an alias for Nor.
func None[T any](p1, p2 Predicate[T]) Predicate[T] {
	return Nor(p1, p2)
}

// Xand returns the equivalence of p1 and p2: true iff both are true or both
// are false.
func Xand[T any](p1, p2 Predicate[T]) Predicate[T] {
	return Or(
		All(p1, p2),
		None(p1, p2),
	)
}

// Xor returns the exclusive disjunction of p1 and p2: true iff exactly one
// is true.
func Xor[T any](p1, p2 Predicate[T]) Predicate[T] {
	return Or(
		And(p1, Not(p2)),
		And(Not(p1), p2),
	)
}

// Cond returns the material implication "if p then q": true unless p is true
// and q is false.
func Cond[T any](p, q Predicate[T]) Predicate[T] {
	return p.Negate().Or(q)
}
