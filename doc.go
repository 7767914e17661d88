// Package effect provides a deferred-computation abstraction for Go.
//
// An Effect is a value that describes an operation — its Intent — together
// with an ordered chain of success/error callbacks, without performing the
// operation. Building a program out of effects keeps the business logic pure:
// the logic decides *what* should happen, performers decide *how*.
//
// # What is an Intent?
//
// An intent is any value describing an operation to perform:
//   - reading a row from a database,
//   - calling a remote service,
//   - or anything else that would violate pure function guarantees.
//
// Intents are inert data. They are executed only when an Effect is handed to
// Perform together with a Dispatcher that knows which Performer is
// responsible for each intent type.
//
// # How does it work?
//
// Client code builds an Effect with New or WithCallbacks and attaches
// continuations with On, OnSuccess, and OnError. Every attachment returns a
// new Effect; effects are immutable. Perform looks the intent up in the
// Dispatcher, runs the Performer, and drives the callback chain with the
// delivered result. A callback may return another *Effect, in which case the
// new effect is performed and everything still queued after that callback is
// preserved behind it.
//
// Failures travel as *Failure tokens: a captured error (or recovered panic)
// carrying its kind and stack, passed through the chain until an error
// callback consumes it.
//
// # Testing
//
// The companion package effecttest resolves effect chains manually, without
// any dispatcher, so logic that returns effects can be tested
// deterministically. See effecttest.Resolve and effecttest.SyncPerform.
//
// Example:
//
//	func Greeting(email string) *effect.Effect {
//	    return LookupUser(email).OnSuccess(func(v any) (any, error) {
//	        return "hello, " + v.(User).Name, nil
//	    })
//	}
package effect
