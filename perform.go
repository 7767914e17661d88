package effect

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Box is the one-shot slot a performer delivers its intent's result into.
// Delivery drives the rest of the effect's callback chain.
type Box struct {
	deliver func(value any, f *Failure)
	done    bool
}

// NewBox returns a box that hands whatever is delivered to fn. Performer
// middleware uses this to observe an inner performer's delivery before
// forwarding it to the real box.
func NewBox(fn func(value any, f *Failure)) *Box {
	return &Box{deliver: fn}
}

// Succeed delivers value as the intent's successful result.
// Delivering into a box twice is a programmer error and panics.
func (b *Box) Succeed(value any) {
	if b.done {
		panic("effect: box already delivered")
	}
	b.done = true
	b.deliver(value, nil)
}

// Fail delivers f as the intent's failure.
func (b *Box) Fail(f *Failure) {
	if b.done {
		panic("effect: box already delivered")
	}
	b.done = true
	b.deliver(nil, f)
}

type performConfig struct {
	logger *zap.Logger
}

// Option configures Perform.
type Option func(*performConfig)

// WithLogger routes Perform's lifecycle logs to logger. The default is a nop
// logger; failures that exhaust a chain unconsumed are invisible without one.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *performConfig) { cfg.logger = logger }
}

// Perform executes eff's intent via the dispatcher and drives its callback
// chain with the delivered result. Results travel only through callbacks:
// attach terminal ones before calling Perform if you care about the outcome,
// or use effecttest.SyncPerform.
//
// A callback returning a new *Effect switches the chain to that effect: it is
// performed in turn, with everything still queued after the callback
// re-attached behind its own callbacks.
//
// Whether Perform returns before or after delivery is up to the performer;
// see SynchronousPerformer.
func Perform(ctx context.Context, d Dispatcher, eff *Effect, opts ...Option) {
	cfg := performConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	perform(ctx, d, eff, cfg)
}

func perform(ctx context.Context, d Dispatcher, eff *Effect, cfg performConfig) {
	cfg.logger.Debug("performing effect",
		zap.String("effectId", eff.id),
		zap.String("intent", typeName(eff.intent)),
	)

	performer, err := d.Lookup(eff.intent)
	if err != nil {
		continueChain(ctx, d, eff, nil, NewFailure(err), cfg)
		return
	}

	box := &Box{deliver: func(value any, f *Failure) {
		continueChain(ctx, d, eff, value, f, cfg)
	}}
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if box.done {
				// Result already left the box; the chain must not see this.
				cfg.logger.Error("performer panicked after delivering",
					zap.String("effectId", eff.id),
					zap.Any("panic", r),
				)
				return
			}
			box.Fail(CapturePanic(r))
		}()
		performer.Perform(ctx, d, eff.intent, box)
	}()
}

// continueChain walks eff's callbacks with the freshly delivered result,
// using the same mode-carrying rules as effecttest's resolver, except that a
// callback returning a new effect is performed instead of handed back.
func continueChain(ctx context.Context, d Dispatcher, eff *Effect, value any, failure *Failure, cfg performConfig) {
	callbacks := eff.callbacks
	for i, cb := range callbacks {
		if failure != nil {
			if cb.Error == nil {
				continue
			}
			value, failure = call(func() (any, error) { return cb.Error(failure) })
		} else {
			if cb.Success == nil {
				continue
			}
			v := value
			value, failure = call(func() (any, error) { return cb.Success(v) })
		}
		if failure == nil {
			if next, ok := value.(*Effect); ok {
				merged := WithCallbacks(next.intent, append(next.Callbacks(), callbacks[i+1:]...))
				perform(ctx, d, merged, cfg)
				return
			}
		}
	}
	if failure != nil {
		cfg.logger.Error("failure reached end of effect chain unconsumed",
			zap.String("effectId", eff.id),
			zap.String("kind", string(failure.Kind())),
			zap.Error(failure.Unwrap()),
		)
		return
	}
	cfg.logger.Debug("effect chain completed",
		zap.String("effectId", eff.id),
	)
}

// call invokes a callback, folding a returned error or a panic into a
// failure token. A returned *Failure keeps its identity.
func call(fn func() (any, error)) (value any, failure *Failure) {
	defer func() {
		if r := recover(); r != nil {
			value, failure = nil, CapturePanic(r)
		}
	}()
	value, err := fn()
	if err != nil {
		return nil, AsFailure(err)
	}
	return value, nil
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
