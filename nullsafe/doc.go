// Package nullsafe evaluates accessor chains that may fail partway through,
// replacing panics and nil results with value-level fallbacks.
//
// Core APIs include chain evaluation with a default (Get, GetOr, GetIf),
// boolean probes (IsNil, IsEqual, IsTrue, IsFalse), and variadic nil checks
// over plain values or suppliers (AllNil, AnyNotNil, ...).
//
// A single call replaces the usual guard chain:
//
//	city := nullsafe.GetOr(func() string { return order.Customer.Address.City }, "unknown")
//
// instead of
//
//	city := "unknown"
//	if order != nil && order.Customer != nil && order.Customer.Address != nil {
//	    city = order.Customer.Address.City
//	}
//
// No operation in this package ever panics outward; every failure raised while
// evaluating a caller-supplied function is converted to the documented
// fallback. Predicates built with the predicate package deliberately have the
// opposite policy and propagate failures unchanged.
package nullsafe
