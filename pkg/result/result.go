// Package result provides the outcome types threaded through the domain layer:
// Result (success or failure with a message), Of[T] (the same, carrying a value
// on success) and Maybe[T] (an optional value).
//
// Expected business failures are returned as failed results. Panics are reserved
// for misuse, such as reading the value of a failed result.
package result

// Result is the outcome of an operation that produces no value.
// A failed Result always carries a non-empty message; a successful one never does.
type Result struct {
	failed bool
	err    string
}

// Ok returns a successful Result.
func Ok() Result {
	return Result{}
}

// Fail returns a failed Result carrying msg. It panics if msg is empty.
func Fail(msg string) Result {
	if msg == "" {
		panic("result: failure must carry a message")
	}

	return Result{failed: true, err: msg}
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool { return !r.failed }

// IsFailure reports whether the operation failed.
func (r Result) IsFailure() bool { return r.failed }

// Error returns the failure message, or an empty string on success.
func (r Result) Error() string { return r.err }

// Of is the outcome of an operation that produces a value of type T on success.
type Of[T any] struct {
	Result

	value T
}

// OkOf returns a successful result wrapping v.
func OkOf[T any](v T) Of[T] {
	return Of[T]{value: v}
}

// FailOf returns a failed result of type T carrying msg. It panics if msg is empty.
func FailOf[T any](msg string) Of[T] {
	return Of[T]{Result: Fail(msg)}
}

// Value returns the wrapped value. It panics when the result is a failure.
func (r Of[T]) Value() T {
	if r.failed {
		panic("result: value of a failed result: " + r.err)
	}

	return r.value
}

// Unwrap drops the value and returns the bare outcome.
func (r Of[T]) Unwrap() Result {
	return r.Result
}

// FirstFailure returns the first failed result among rs, or Ok when all succeeded.
func FirstFailure(rs ...Result) Result {
	for _, r := range rs {
		if r.IsFailure() {
			return r
		}
	}

	return Ok()
}
