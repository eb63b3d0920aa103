// Package result carries the outcome of every operation exposed to callers:
// either success with an optional payload, or failure with exactly one Error.
// Expected business and technical failures travel as Failure values; invariant
// breaches in the calling code (success with an error, failure without one)
// panic instead, because they indicate a defect rather than a condition to
// handle.
package result

// Void is the payload of commands that succeed without returning data.
type Void struct{}

type Result[T any] struct {
	ok    bool
	value T
	err   Error
}

// New builds a result while enforcing the construction invariants. Prefer the
// Ok/Success/Failure factories; New exists for callers that already hold both
// halves of the outcome.
func New[T any](ok bool, value T, err Error) Result[T] {
	if ok && !err.IsNone() {
		panic("result: success cannot carry an error")
	}
	if !ok && err.IsNone() {
		panic("result: failure must carry an error")
	}
	return Result[T]{ok: ok, value: value, err: err}
}

func Ok() Result[Void] {
	return Result[Void]{ok: true}
}

func Success[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

func Failure[T any](err Error) Result[T] {
	if err.IsNone() {
		panic("result: failure must carry an error")
	}
	return Result[T]{err: err}
}

func Fail(err Error) Result[Void] {
	return Failure[Void](err)
}

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the payload; meaningful only after checking IsSuccess.
func (r Result[T]) Value() T { return r.value }

func (r Result[T]) Error() Error { return r.err }

func (r Result[T]) ValueOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// OnSuccess runs fn when the result is successful and returns the result
// unchanged.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// OnFailure runs fn with the error when the result failed and returns the
// result unchanged.
func (r Result[T]) OnFailure(fn func(Error)) Result[T] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Map transforms the payload on success and propagates the error untouched
// otherwise.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return Success(fn(r.value))
}

// Bind chains an operation returning another result, short-circuiting on
// failure.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return fn(r.value)
}

// Match performs total case analysis over the two outcome shapes.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func(Error) U) U {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Outcome is the payload-independent view used when several independent steps
// must all succeed.
type Outcome interface {
	IsSuccess() bool
	Error() Error
}

// Combine returns the first failure encountered, else success.
func Combine(outcomes ...Outcome) Result[Void] {
	for _, o := range outcomes {
		if !o.IsSuccess() {
			return Fail(o.Error())
		}
	}
	return Ok()
}
