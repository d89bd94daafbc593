package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-api/internal/api/metrics"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the employee id, guaranteeing per-employee audit ordering.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an audit entry to the worker responsible for its employee id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(entry domain.AuditEntry) {
	i := d.shardIndex(entry.EmployeeID)
	d.workers[i] <- entry
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps an employee id deterministically to a worker index.
func (d *Dispatcher) shardIndex(employeeID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(employeeID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Process(ctx, entry); err != nil {
				metrics.AuditErrorsTotal.WithLabelValues(string(entry.Action)).Inc()
				d.log.Error().Err(err).
					Str("employee_id", entry.EmployeeID).
					Int("worker_id", id).
					Msg("audit processing failed")
				continue
			}
			metrics.AuditProcessedTotal.WithLabelValues(string(entry.Action)).Inc()
		}
	}
}
