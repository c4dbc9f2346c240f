// Package worker runs itinerary generation off the request path.
// Trip creation and regeneration enqueue a trip ID; a small pool of workers
// drains the queue and drives the generator. Each job is a single independent
// unit of work — no polling, no automatic retries.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrQueueFull is returned by Enqueue when the generation queue has no room.
// The trip itself is unaffected; the user can regenerate later.
var ErrQueueFull = errors.New("generation queue full")

// Generator is implemented by service.ItineraryService.
type Generator interface {
	Generate(ctx context.Context, tripID uuid.UUID) error
}

// jobTimeout bounds a single generation end to end, model call included.
const jobTimeout = 5 * time.Minute

// Pool is a bounded queue with a fixed set of workers.
type Pool struct {
	jobs chan uuid.UUID
	log  *slog.Logger
	g    *errgroup.Group
}

// NewPool constructs a Pool with the given queue capacity. Call Start before
// Enqueue.
func NewPool(queueSize int, log *slog.Logger) *Pool {
	return &Pool{
		jobs: make(chan uuid.UUID, queueSize),
		log:  log,
	}
}

// Start launches workers goroutines that drain the queue until Close is
// called. The generator is passed here rather than at construction so the
// pool can be handed to the services that enqueue into it first.
func (p *Pool) Start(gen Generator, workers int) {
	g := new(errgroup.Group)
	for range workers {
		g.Go(func() error {
			for tripID := range p.jobs {
				p.run(gen, tripID)
			}
			return nil
		})
	}
	p.g = g
}

// run executes one generation job with its own timeout. Failures are terminal
// for the job: they are logged and dropped, never requeued — the user-facing
// regenerate action is the only retry path.
func (p *Pool) run(gen Generator, tripID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	if err := gen.Generate(ctx, tripID); err != nil {
		p.log.Error("itinerary generation failed",
			"trip_id", tripID,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return
	}
	p.log.Info("itinerary generated",
		"trip_id", tripID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// Enqueue submits a trip for generation without blocking.
// Returns ErrQueueFull when the queue is at capacity.
func (p *Pool) Enqueue(tripID uuid.UUID) error {
	select {
	case p.jobs <- tripID:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for in-flight and queued work to drain.
func (p *Pool) Close() {
	close(p.jobs)
	if p.g != nil {
		_ = p.g.Wait()
	}
}
