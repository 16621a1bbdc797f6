// Package predicate builds composite boolean predicates from existing ones.
//
// A Predicate is a func(T) bool with And, Or, and Negate methods. Free
// functions cover the full algebra: Not, And, Or, Nand, Nor, Xand, Xor, Cond,
// with All and None as aliases for And and Nor. Variadic forms (AndOf, OrOf,
// NandOf, NorOf, AllOf, NoneOf) left-fold the 2-ary operation over an
// argument list and report ErrNoPredicates for empty input.
//
//	shortOrA := predicate.Xor(equalsTo("A"), lengthEquals(1))
//	kept := predicate.Filter(items, shortOrA)
//
// Supplied predicates must be side effect free; combinators may invoke either
// operand and do not guarantee short-circuit evaluation. Unlike the nullsafe
// package, nothing here suppresses failures: a panic raised by an underlying
// predicate propagates to the caller unchanged.
package predicate
