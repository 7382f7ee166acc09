package internal

import "github.com/pkg/errors"

// Deep inside the flat-array decoding and the worker pool, a broken invariant
// is a programming error rather than bad geometry. Those sites panic with a
// KernelError, and the public API recovers it into an ordinary error.

// KernelError is a distinct type so that runtime errors, which are also error
// values, are not mistaken for ours.
type KernelError struct {
	error
}

// Panic with a KernelError.
func Fatalf(format string, args ...interface{}) {
	panic(KernelError{errors.Errorf(format, args...)})
}

// Convert a recovered KernelError back into an error. Any other panic value is
// re-raised, since it was not thrown by us.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if kernelError, ok := r.(KernelError); ok {
			return kernelError.error
		}
		panic(r)
	}
	return nil
}
