package mvi

import (
	"context"
	"iter"
)

// Apply wraps a single collaborator call into a result stream.
//
// The stream emits inProgress first, then exactly one of onSuccess(value) or
// onError(err), and ends. A panic inside call is recovered and reported
// through onError wrapped in [ErrCollaboratorPanic].
func Apply[T, R any](
	ctx context.Context,
	call func(ctx context.Context) (T, error),
	onSuccess func(T) R,
	onError func(error) R,
	inProgress R,
) iter.Seq[R] {
	return func(yield func(R) bool) {
		if !yield(inProgress) {
			return
		}

		value, err := safeCall(ctx, call)
		if err != nil {
			yield(onError(err))
			return
		}

		yield(onSuccess(value))
	}
}

// Just returns a stream that emits results in order. It is used by intents
// that need no I/O.
func Just[R any](results ...R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, r := range results {
			if !yield(r) {
				return
			}
		}
	}
}

func safeCall[T any](ctx context.Context, call func(ctx context.Context) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value, err = zero, panicError(r)
		}
	}()

	return call(ctx)
}
