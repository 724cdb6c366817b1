package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeSink struct {
	mu      sync.Mutex
	batches [][]Event
	err     error
}

func (s *fakeSink) Send(_ context.Context, batch []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, batch)
	return nil
}

func (s *fakeSink) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *fakeSink) sent() [][]Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]Event(nil), s.batches...)
}

func event(n int) Event {
	return Event{ID: fmt.Sprintf("e%d", n), Tipo: EventButtonClick, Accion: "click"}
}

func TestRecorder_FlushesWhenBatchIsFull(t *testing.T) {
	sink := &fakeSink{}
	rec := NewRecorder(sink, Config{BatchSize: 10, Interval: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	for i := 0; i < 9; i++ {
		rec.Log(event(i))
	}
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, sink.sent())

	rec.Log(event(9))

	assert.Eventually(t, func() bool {
		b := sink.sent()
		return len(b) == 1 && len(b[0]) == 10
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, rec.Len())
	assert.Equal(t, "e0", sink.sent()[0][0].ID)
}

func TestRecorder_FlushesOnInterval(t *testing.T) {
	sink := &fakeSink{}
	rec := NewRecorder(sink, Config{BatchSize: 10, Interval: 20 * time.Millisecond}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)

	rec.Log(event(1))
	rec.Log(event(2))

	assert.Eventually(t, func() bool {
		b := sink.sent()
		return len(b) == 1 && len(b[0]) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestRecorder_Log_FillsDefaults(t *testing.T) {
	rec := NewRecorder(&fakeSink{}, DefaultConfig(), nil)
	rec.Log(Event{Accion: "abrir"})

	pending := rec.Pending()
	if assert.Len(t, pending, 1) {
		assert.NotEmpty(t, pending[0].ID)
		assert.False(t, pending[0].Timestamp.IsZero())
		assert.Equal(t, EventCustom, pending[0].Tipo)
	}
}

func TestRecorder_QueueCapDropsOldest(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	assert.NoError(t, err)

	rec := NewRecorder(&fakeSink{}, Config{BatchSize: 2, MaxQueue: 5}, metrics)
	for i := 0; i < 8; i++ {
		rec.Log(event(i))
	}

	pending := rec.Pending()
	assert.Len(t, pending, 5)
	assert.Equal(t, "e3", pending[0].ID)
	assert.Equal(t, "e7", pending[4].ID)
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.dropped))
	assert.Equal(t, float64(5), testutil.ToFloat64(metrics.queued))
}

func TestRecorder_FailedBatchIsRequeuedInOrder(t *testing.T) {
	sink := &fakeSink{err: errors.New("backend down")}
	rec := NewRecorder(sink, Config{BatchSize: 2, MaxQueue: 10}, nil)
	for i := 0; i < 3; i++ {
		rec.Log(event(i))
	}

	err := rec.Flush(context.Background())
	assert.EqualError(t, err, "backend down")

	pending := rec.Pending()
	assert.Equal(t, []string{"e0", "e1", "e2"}, []string{pending[0].ID, pending[1].ID, pending[2].ID})

	sink.setErr(nil)
	assert.NoError(t, rec.Flush(context.Background()))
	assert.Len(t, sink.sent(), 2)
	assert.Equal(t, 0, rec.Len())
}

func TestRecorder_Backoff(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	now := t0

	sink := &fakeSink{err: errors.New("timeout")}
	rec := NewRecorder(sink, Config{BatchSize: 1, BaseBackoff: time.Second, MaxBackoff: 10 * time.Second}, nil)
	rec.now = func() time.Time { return now }
	rec.Log(event(1))

	want := []time.Duration{1, 2, 4, 8, 10, 10}
	for _, w := range want {
		assert.Error(t, rec.Flush(context.Background()))
		assert.Equal(t, w*time.Second, rec.backoff)
		assert.Equal(t, now.Add(w*time.Second), rec.retryAt)
	}

	t.Run("loop waits while backing off", func(t *testing.T) {
		sink.setErr(nil)
		now = t0.Add(5 * time.Second)
		rec.flushDue(context.Background())
		assert.Empty(t, sink.sent())
		assert.Equal(t, 1, rec.Len())
	})

	t.Run("success resets the backoff", func(t *testing.T) {
		now = t0.Add(11 * time.Second)
		rec.flushDue(context.Background())
		assert.Len(t, sink.sent(), 1)
		assert.Equal(t, time.Duration(0), rec.backoff)
		assert.True(t, rec.retryAt.IsZero())
	})
}

func TestRecorder_CloseFlushesRemaining(t *testing.T) {
	sink := &fakeSink{}
	rec := NewRecorder(sink, Config{BatchSize: 10, Interval: time.Hour}, nil)
	rec.Start(context.Background())

	rec.Log(event(1))
	rec.Log(event(2))
	rec.Log(event(3))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, rec.Close(ctx))

	b := sink.sent()
	if assert.Len(t, b, 1) {
		assert.Len(t, b[0], 3)
	}

	assert.NoError(t, rec.Close(ctx))
	assert.Len(t, sink.sent(), 1)
}

func TestRecorder_CloseWithoutStart(t *testing.T) {
	sink := &fakeSink{err: errors.New("unreachable")}
	rec := NewRecorder(sink, DefaultConfig(), nil)
	rec.Log(event(1))

	err := rec.Close(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, rec.Len())
}
