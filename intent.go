package effect

import "context"

// FuncIntent wraps a plain function as a self-performing, synchronous intent.
// Useful for small one-off operations that don't warrant a performer
// registration.
type FuncIntent struct {
	Fn func(ctx context.Context) (any, error)
}

func (fi FuncIntent) PerformEffect(ctx context.Context, _ Dispatcher, box *Box) {
	v, err := fi.Fn(ctx)
	if err != nil {
		box.Fail(AsFailure(err))
		return
	}
	box.Succeed(v)
}

func (FuncIntent) Synchronous() {}

// Func returns an effect that performs fn.
func Func(fn func(ctx context.Context) (any, error)) *Effect {
	return New(FuncIntent{Fn: fn})
}
