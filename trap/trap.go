package trap

import (
	"errors"
	"fmt"
)

// ErrPanicRecovered is wrapped around every panic value recovered by Catch.
var ErrPanicRecovered = errors.New("panic recovered")

// Catch invokes fn and returns its result. If fn is nil or panics, Catch
// returns the zero value of S and an error wrapping ErrPanicRecovered.
//
// Example:
//
//	value, err := trap.Catch(func() int { return records[0].Count })
//	if errors.Is(err, trap.ErrPanicRecovered) {
//	    value = 0
//	}
func Catch[S any](fn func() S) (result S, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			var zero S

			result = zero
			err = fmt.Errorf("%w: %v", ErrPanicRecovered, recovered)
		}
	}()

	return fn(), nil
}
