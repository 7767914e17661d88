// Package pool provides an asynchronous, partitioned performer wrapper.
//
// A pool dispatcher delegates intent lookup to an inner dispatcher but runs
// every performer on one of a fixed set of worker goroutines. Intents
// implementing Partitionable are routed by the hash of their partition key,
// so intents sharing a key are always performed by the same worker, in
// arrival order.
//
// Pool-dispatched performers deliver their results from the worker, after
// the dispatching call has returned: they are never synchronous, and
// effecttest.SyncPerform over a pool dispatcher fails accordingly.
package pool

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deferkit/effect"
)

// Partitionable is implemented by intents whose performing order matters
// per key.
type Partitionable interface {
	PartitionKey() string
}

// Config sizes a pool.
type Config struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

// NewConfig clamps non-positive sizes to the defaults.
func NewConfig(bufferSize, numWorkers int) Config {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return Config{BufferSize: bufferSize, NumWorkers: numWorkers}
}

type job struct {
	ctx       context.Context
	d         effect.Dispatcher
	performer effect.Performer
	intent    effect.Intent
	box       *effect.Box
}

// Dispatcher wraps an inner effect.Dispatcher with a worker pool.
type Dispatcher struct {
	PoolId string

	inner  effect.Dispatcher
	jobChs []chan job
	logger *zap.Logger
	cancel context.CancelFunc
	closed bool
}

// New starts cfg.NumWorkers workers and returns the wrapping dispatcher.
// Close releases the workers; performing through a closed pool blocks until
// the dispatching context is done.
func New(ctx context.Context, inner effect.Dispatcher, cfg Config, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = NewConfig(cfg.BufferSize, cfg.NumWorkers)
	ctx, cancel := context.WithCancel(ctx)

	jobChs := make([]chan job, cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		jobCh := make(chan job, cfg.BufferSize)
		go func(ch chan job) {
			for {
				select {
				case j := <-ch:
					j.performer.Perform(j.ctx, j.d, j.intent, j.box)
				case <-ctx.Done():
					return
				}
			}
		}(jobCh)
		jobChs[i] = jobCh
	}

	p := &Dispatcher{
		PoolId: uuid.New().String(),
		inner:  inner,
		jobChs: jobChs,
		logger: logger,
		cancel: cancel,
	}
	logger.Debug("created performer pool",
		zap.String("poolId", p.PoolId),
		zap.Int("numWorkers", cfg.NumWorkers),
		zap.Int("bufferSize", cfg.BufferSize),
	)
	return p
}

// Lookup resolves intent through the inner dispatcher and wraps the
// resulting performer so it runs on this pool's workers.
func (p *Dispatcher) Lookup(intent effect.Intent) (effect.Performer, error) {
	performer, err := p.inner.Lookup(intent)
	if err != nil {
		return nil, err
	}
	return asyncPerformer{pool: p, inner: performer}, nil
}

// Close tears the workers down. Idempotent.
func (p *Dispatcher) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.cancel()
	p.logger.Debug("closed performer pool", zap.String("poolId", p.PoolId))
}

type asyncPerformer struct {
	pool  *Dispatcher
	inner effect.Performer
}

// Perform enqueues the inner performer on the worker owning the intent's
// partition and returns without waiting for delivery.
func (ap asyncPerformer) Perform(ctx context.Context, d effect.Dispatcher, intent effect.Intent, box *effect.Box) {
	j := job{ctx: ctx, d: d, performer: ap.inner, intent: intent, box: box}
	select {
	case <-ctx.Done():
	case ap.pool.jobChs[indexByHash(intent, len(ap.pool.jobChs))] <- j:
	}
}

func indexByHash(intent effect.Intent, numChs int) int {
	if numChs == 0 {
		panic("number of workers cannot be 0")
	}
	p, ok := intent.(Partitionable)
	if !ok || numChs == 1 {
		return 0
	}
	return int(xxhash.Sum64String(p.PartitionKey()) % uint64(numChs))
}
