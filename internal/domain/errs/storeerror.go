package errs

import "fmt"

// StoreError reports a connectivity problem or an unexpected failure in the
// backing store. Callers should treat it as a server-side fault.
type StoreError struct {
	message string
}

func (v *StoreError) Error() string {
	return v.message
}

func StoreErrorf(format string, args ...any) *StoreError {
	return &StoreError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &StoreError{}
