package observability

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// SolveEvent describes one finished solve.
type SolveEvent struct {
	Family   string
	Variant  string
	Outcome  string
	Duration time.Duration
	Steps    int
}

const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid_input"
	OutcomeUnknown     = "unknown_route"
	OutcomeUnsupported = "unsupported"
)

type SolveObserver interface {
	ObserveSolve(ev SolveEvent)
}

// SolveLogger writes one structured record per solve.
type SolveLogger struct {
	logger *slog.Logger
}

func NewSolveLogger(logger *slog.Logger) *SolveLogger {
	return &SolveLogger{logger: logger}
}

func (l *SolveLogger) ObserveSolve(ev SolveEvent) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info("solve",
		slog.String("family", ev.Family),
		slog.String("variant", ev.Variant),
		slog.String("outcome", ev.Outcome),
		slog.Float64("duration_ms", float64(ev.Duration.Microseconds())/1000.0),
		slog.Int("steps", ev.Steps),
	)
}

// Fanout forwards each event to every non-nil observer in order.
type Fanout []SolveObserver

func (f Fanout) ObserveSolve(ev SolveEvent) {
	for _, o := range f {
		if o != nil {
			o.ObserveSolve(ev)
		}
	}
}

// AsyncSolveObserver moves delivery off the request path. Events are dropped,
// not queued, once the buffer is full or the observer is closed.
type AsyncSolveObserver struct {
	next    SolveObserver
	events  chan SolveEvent
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

func NewAsyncSolveObserver(next SolveObserver, buffer int) *AsyncSolveObserver {
	if buffer <= 0 {
		buffer = 1
	}

	o := &AsyncSolveObserver{
		next:   next,
		events: make(chan SolveEvent, buffer),
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for ev := range o.events {
			if o.next == nil {
				continue
			}
			o.next.ObserveSolve(ev)
		}
	}()

	return o
}

func (o *AsyncSolveObserver) ObserveSolve(ev SolveEvent) {
	if o == nil {
		return
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		o.dropped.Add(1)
		return
	}
	select {
	case o.events <- ev:
	default:
		o.dropped.Add(1)
	}
}

func (o *AsyncSolveObserver) Dropped() uint64 {
	if o == nil {
		return 0
	}
	return o.dropped.Load()
}

// Close stops intake and blocks until buffered events are delivered.
func (o *AsyncSolveObserver) Close() {
	if o == nil {
		return
	}
	o.once.Do(func() {
		o.mu.Lock()
		o.closed = true
		close(o.events)
		o.mu.Unlock()
		o.wg.Wait()
	})
}
