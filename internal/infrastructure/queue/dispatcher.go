package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mercatto/commerce-api/internal/api/metrics"
	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher records authentication audit events asynchronously through a
// fixed set of workers. Events are sharded by actor email with consistent
// hashing, guaranteeing per-actor ordering in the trail.
type Dispatcher struct {
	workers []chan domain.AuthEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event for the worker responsible for its actor.
// Never blocks: when the shard's buffer is full the event is dropped and
// counted, because audit must not slow down or fail a login.
func (d *Dispatcher) Record(event domain.AuthEvent) {
	i := d.shardIndex(event.ActorEmail)
	select {
	case d.workers[i] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().
			Str("actor", event.ActorEmail).
			Int("worker_id", i).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an actor email deterministically to a worker index.
func (d *Dispatcher) shardIndex(actorEmail string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorEmail))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("actor", event.ActorEmail).
					Int("worker_id", id).
					Msg("audit event persistence failed")
			}
		}
	}
}
