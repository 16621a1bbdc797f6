// Package trap converts panics raised by zero-argument functions into errors.
//
// Catch is the single recovery boundary used by the nullsafe package; callers
// who want the failure as a value instead of silent suppression can use it
// directly:
//
//	result, err := trap.Catch(func() string { return order.Customer().Name() })
//	if err != nil {
//	    // errors.Is(err, trap.ErrPanicRecovered) == true
//	}
//
// No panic ever escapes Catch, including the one raised by invoking a nil
// function value.
package trap
