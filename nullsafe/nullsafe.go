package nullsafe

import (
	"github.com/programming-automation/lib-funcutils/internal/nilcheck"
	"github.com/programming-automation/lib-funcutils/trap"
)

// Supplier produces a value of type S. It is invoked at most once per
// operation and may panic; every operation in this package treats a panic as
// an absent result.
type Supplier[S any] func() S

// Get invokes fn and returns its result. Returns the zero value of S when fn
// is nil, fn panics, or the produced value is nil.
//
// Example:
//
//	name := nullsafe.Get(func() string { return order.Customer.Name })
func Get[S any](fn Supplier[S]) S {
	result, err := trap.Catch(fn)
	if err != nil {
		var zero S
		return zero
	}

	return result
}

// GetOr invokes fn and returns its result, or defaultValue when fn is nil,
// fn panics, or the produced value is nil.
//
// Example:
//
//	city := nullsafe.GetOr(func() string { return order.Customer.Address.City }, "unknown")
func GetOr[S any](fn Supplier[S], defaultValue S) S {
	result, err := trap.Catch(fn)
	if err != nil || nilcheck.Value(result) {
		return defaultValue
	}

	return result
}

// GetIf invokes fn and returns its result when the result is non-nil and
// condition(result) is true. Returns the zero value of S when the result is
// nil, the condition is nil or false, or either callable panics.
//
// Example:
//
//	active := nullsafe.GetIf(loadAccount, func(a *Account) bool { return a.Active })
func GetIf[S any](fn Supplier[S], condition func(S) bool) S {
	var zero S

	result, err := trap.Catch(fn)
	if err != nil || nilcheck.Value(result) {
		return zero
	}

	ok, err := trap.Catch(func() bool { return condition(result) })
	if err != nil || !ok {
		return zero
	}

	return result
}

// IsNil reports whether fn is nil, panics, or produces a nil value.
func IsNil[S any](fn Supplier[S]) bool {
	result, err := trap.Catch(fn)

	return err != nil || nilcheck.Value(result)
}

// IsEqual reports whether fn evaluates without panicking to a value equal to
// expected. Returns false when fn is nil, panics, or produces an unequal
// value. A nil expected always yields false; compare against a non-nil
// operand or use IsNil for absence checks.
//
// Example:
//
//	if nullsafe.IsEqual("PLN", func() string { return invoice.Currency().Code() }) {
func IsEqual[S comparable](expected S, fn Supplier[S]) bool {
	if nilcheck.Value(expected) {
		return false
	}

	equal, err := trap.Catch(func() bool { return fn() == expected })

	return err == nil && equal
}

// IsEqualFunc reports whether fn evaluates without panicking to a value that
// eq considers equal to expected. Use it for types whose value equality is
// not the == operator, such as decimal.Decimal.
//
// Example:
//
//	paid := nullsafe.IsEqualFunc(total, invoice.PaidAmount, decimal.Decimal.Equal)
func IsEqualFunc[S any](expected S, fn Supplier[S], eq func(S, S) bool) bool {
	if nilcheck.Value(expected) {
		return false
	}

	equal, err := trap.Catch(func() bool { return eq(expected, fn()) })

	return err == nil && equal
}

// IsTrue reports whether fn evaluates without panicking to true. Returns
// false when fn is nil or panics.
func IsTrue(fn Supplier[bool]) bool {
	result, err := trap.Catch(fn)

	return err == nil && result
}

// IsFalse reports whether fn evaluates without panicking to false. Returns
// false when fn is nil or panics.
//
// IsFalse is not the negation of IsTrue: both report false for a nil or
// panicking supplier.
func IsFalse(fn Supplier[bool]) bool {
	result, err := trap.Catch(fn)

	return err == nil && !result
}
