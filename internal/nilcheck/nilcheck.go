package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil interfaces.
//
// Values of non-nilable kinds (numbers, strings, structs, arrays, booleans)
// are never nil.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Value reports whether value, seen through a type parameter, is nil.
// It exists so generic callers can pass a T without first converting to any
// at every call site.
func Value[T any](value T) bool {
	return Interface(value)
}
