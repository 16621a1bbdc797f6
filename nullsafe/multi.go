package nullsafe

import "github.com/programming-automation/lib-funcutils/internal/nilcheck"

// AllNil reports whether every value is nil. Empty input yields true.
func AllNil(values ...any) bool {
	for _, value := range values {
		if !nilcheck.Interface(value) {
			return false
		}
	}

	return true
}

// AllNotNil reports whether every value is non-nil. Empty input yields true.
func AllNotNil(values ...any) bool {
	for _, value := range values {
		if nilcheck.Interface(value) {
			return false
		}
	}

	return true
}

// AnyNil reports whether at least one value is nil. Empty input yields false.
func AnyNil(values ...any) bool {
	return !AllNotNil(values...)
}

// AnyNotNil reports whether at least one value is non-nil. Empty input yields
// false.
func AnyNotNil(values ...any) bool {
	return !AllNil(values...)
}

// AllNilFunc reports whether every supplier yields an absent result under Get
// semantics: a nil supplier, a panic, or a nil value all count as absent.
// Empty input yields true.
func AllNilFunc(fns ...Supplier[any]) bool {
	for _, fn := range fns {
		if !IsNil(fn) {
			return false
		}
	}

	return true
}

// AllNotNilFunc reports whether every supplier yields a present result under
// Get semantics. Empty input yields true.
func AllNotNilFunc(fns ...Supplier[any]) bool {
	for _, fn := range fns {
		if IsNil(fn) {
			return false
		}
	}

	return true
}

// AnyNilFunc reports whether at least one supplier yields an absent result.
// Empty input yields false.
func AnyNilFunc(fns ...Supplier[any]) bool {
	return !AllNotNilFunc(fns...)
}

// AnyNotNilFunc reports whether at least one supplier yields a present
// result. Empty input yields false.
func AnyNotNilFunc(fns ...Supplier[any]) bool {
	return !AllNilFunc(fns...)
}
