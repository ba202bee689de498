// Package result models the outcome of operations whose failure is an
// expected business condition rather than an error to propagate.
package result

// Unit is the payload of a value-less result.
type Unit struct{}

// Empty is the value-less result variant.
type Empty = Result[Unit]

// Result is a tagged success/failure outcome carrying either a payload or a
// human-readable failure message. Construct only through Success and Failure;
// the zero value is a failure with no message.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Success creates a successful result carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure creates a failed result carrying a message. The payload stays the
// zero value of T.
func Failure[T any](message string) Result[T] {
	return Result[T]{err: message}
}

// Done creates a successful value-less result.
func Done() Empty {
	return Success(Unit{})
}

// Fail creates a failed value-less result.
func Fail(message string) Empty {
	return Failure[Unit](message)
}

// IsSuccess reports whether the operation succeeded.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the operation failed.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the payload. On failure it is the zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure message, empty on success.
func (r Result[T]) Err() string {
	return r.err
}
