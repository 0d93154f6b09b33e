package observability

import (
	"bytes"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spySolveObserver struct {
	mu      sync.Mutex
	records []SolveEvent
}

func (s *spySolveObserver) ObserveSolve(ev SolveEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, ev)
}

func (s *spySolveObserver) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func TestAsyncSolveObserver_DeliversEventsOnClose(t *testing.T) {
	spy := &spySolveObserver{}
	async := NewAsyncSolveObserver(spy, 8)

	async.ObserveSolve(SolveEvent{Family: "knapsack", Variant: "dp", Outcome: OutcomeOK})
	async.ObserveSolve(SolveEvent{Family: "lis", Outcome: OutcomeOK})
	async.Close()

	if got := spy.Count(); got != 2 {
		t.Fatalf("expected 2 delivered events, got %d", got)
	}
}

func TestAsyncSolveObserver_DropsWhenBufferIsFull(t *testing.T) {
	spy := &spySolveObserver{}
	async := NewAsyncSolveObserver(spy, 1)

	for i := 0; i < 1000; i++ {
		async.ObserveSolve(SolveEvent{Family: "lcs"})
	}
	async.Close()

	if async.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0")
	}
	if uint64(spy.Count())+async.Dropped() != 1000 {
		t.Fatalf("delivered + dropped should account for every event")
	}
}

func TestAsyncSolveObserver_ObserveAfterCloseIsDropped(t *testing.T) {
	async := NewAsyncSolveObserver(nil, 4)
	async.Close()
	async.ObserveSolve(SolveEvent{})
	async.Close()

	if async.Dropped() != 1 {
		t.Fatalf("expected 1 dropped event, got %d", async.Dropped())
	}
}

func TestAsyncSolveObserver_CloseDuringConcurrentObserveDoesNotPanic(t *testing.T) {
	spy := &spySolveObserver{}
	async := NewAsyncSolveObserver(spy, 32)

	const workers = 8
	const perWorker = 200
	var wg sync.WaitGroup
	var panics atomic.Int32

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if recover() != nil {
					panics.Add(1)
				}
			}()
			for j := 0; j < perWorker; j++ {
				async.ObserveSolve(SolveEvent{Family: "prims"})
			}
		}()
	}

	time.Sleep(1 * time.Millisecond)
	async.Close()
	wg.Wait()

	if panics.Load() != 0 {
		t.Fatalf("expected no panics, got %d", panics.Load())
	}
}

func TestSolveLogger_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	l := NewSolveLogger(NewLogger(&buf, "debug", "json"))
	l.ObserveSolve(SolveEvent{Family: "coin-change", Variant: "greedy", Outcome: OutcomeOK, Duration: 1500 * time.Microsecond, Steps: 7})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "solve", rec["msg"])
	assert.Equal(t, "coin-change", rec["family"])
	assert.Equal(t, 1.5, rec["duration_ms"])
	assert.Equal(t, 7.0, rec["steps"])
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "text")
	logger.Info("hidden")
	assert.Zero(t, buf.Len())
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestCollector_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	Fanout{c, nil}.ObserveSolve(SolveEvent{Family: "knapsack", Variant: "dp", Outcome: OutcomeOK, Steps: 12})
	c.ObserveSolve(SolveEvent{Family: "knapsack", Variant: "dp", Outcome: OutcomeInvalid})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.total.WithLabelValues("knapsack", "dp", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.total.WithLabelValues("knapsack", "dp", OutcomeInvalid)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.steps))
}
