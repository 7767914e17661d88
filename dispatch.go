package effect

import (
	"context"
	"fmt"
	"reflect"
)

// Performer executes a single intent and delivers the outcome through box.
// A performer must call exactly one of box.Succeed or box.Fail; it may do so
// after returning (asynchronous delivery).
type Performer interface {
	Perform(ctx context.Context, d Dispatcher, intent Intent, box *Box)
}

// SynchronousPerformer is a Performer that guarantees delivery to the box
// before Perform returns. The capability is checked at registration time via
// TypeDispatcher.RegisterSynchronous; effecttest.SyncPerform relies on it.
type SynchronousPerformer interface {
	Performer
	Synchronous()
}

// PerformerFunc adapts a function to the Performer interface.
type PerformerFunc func(ctx context.Context, d Dispatcher, intent Intent, box *Box)

func (fn PerformerFunc) Perform(ctx context.Context, d Dispatcher, intent Intent, box *Box) {
	fn(ctx, d, intent, box)
}

// SelfPerforming is implemented by intents that carry their own performer,
// so they work with any dispatcher without registration.
type SelfPerforming interface {
	PerformEffect(ctx context.Context, d Dispatcher, box *Box)
}

// SynchronousIntent marks a SelfPerforming intent whose PerformEffect
// delivers to the box inline before returning.
type SynchronousIntent interface {
	SelfPerforming
	Synchronous()
}

// Dispatcher maps an intent to the performer responsible for it.
type Dispatcher interface {
	Lookup(intent Intent) (Performer, error)
}

// ErrNoPerformer is returned by a lookup miss.
var ErrNoPerformer = fmt.Errorf("no performer registered for intent")

// TypeDispatcher routes intents to performers by the intent's dynamic type.
// Register everything up front, then treat the dispatcher as immutable and
// pass it explicitly; there is no process-wide default.
type TypeDispatcher struct {
	performers map[reflect.Type]Performer
}

// NewTypeDispatcher returns an empty dispatcher.
func NewTypeDispatcher() *TypeDispatcher {
	return &TypeDispatcher{performers: make(map[reflect.Type]Performer)}
}

// NewDefaultDispatcher returns a fresh base dispatcher. It has no explicit
// registrations; self-performing intents (FuncIntent, effecttest.StubIntent)
// resolve through the SelfPerforming fallback.
func NewDefaultDispatcher() Dispatcher {
	return NewTypeDispatcher()
}

// Register routes intents with sample's dynamic type to p.
// Registering the same intent type twice is a programmer error and panics.
func (td *TypeDispatcher) Register(sample Intent, p Performer) {
	key := reflect.TypeOf(sample)
	if _, dup := td.performers[key]; dup {
		panic(fmt.Sprintf("effect: performer already registered for intent type %v", key))
	}
	td.performers[key] = p
}

// RegisterSynchronous is Register restricted to synchronous performers.
// Panics if p does not carry the synchronous capability.
func (td *TypeDispatcher) RegisterSynchronous(sample Intent, p Performer) {
	if _, ok := p.(SynchronousPerformer); !ok {
		panic(fmt.Sprintf("effect: performer %T is not synchronous", p))
	}
	td.Register(sample, p)
}

// Lookup returns the performer for intent's type, falling back to the
// intent's own PerformEffect when it is SelfPerforming.
func (td *TypeDispatcher) Lookup(intent Intent) (Performer, error) {
	if p, ok := td.performers[reflect.TypeOf(intent)]; ok {
		return p, nil
	}
	switch intent.(type) {
	case SynchronousIntent:
		return syncSelfPerformer{}, nil
	case SelfPerforming:
		return selfPerformer{}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNoPerformer, intent)
}

// selfPerformer delegates to the intent's own PerformEffect.
type selfPerformer struct{}

func (selfPerformer) Perform(ctx context.Context, d Dispatcher, intent Intent, box *Box) {
	intent.(SelfPerforming).PerformEffect(ctx, d, box)
}

// syncSelfPerformer is selfPerformer carrying the synchronous capability.
type syncSelfPerformer struct{ selfPerformer }

func (syncSelfPerformer) Synchronous() {}
