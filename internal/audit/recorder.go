package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink delivers one batch of events. A returned error puts the batch back
// at the front of the queue.
type Sink interface {
	Send(ctx context.Context, batch []Event) error
}

type Config struct {
	BatchSize   int
	Interval    time.Duration
	MaxQueue    int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

func DefaultConfig() Config {
	return Config{
		BatchSize:   10,
		Interval:    5 * time.Second,
		MaxQueue:    1000,
		BaseBackoff: time.Second,
		MaxBackoff:  time.Minute,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	if c.MaxQueue <= 0 {
		c.MaxQueue = d.MaxQueue
	}
	if c.MaxQueue < c.BatchSize {
		c.MaxQueue = c.BatchSize
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = d.BaseBackoff
	}
	if c.MaxBackoff < c.BaseBackoff {
		c.MaxBackoff = c.BaseBackoff
	}
	return c
}

// Recorder queues audit events and ships them to a Sink in batches, either
// when BatchSize events are waiting or every Interval. The queue never holds
// more than MaxQueue events; the oldest go first.
type Recorder struct {
	cfg     Config
	sink    Sink
	metrics *Metrics
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	queue   []Event
	backoff time.Duration
	retryAt time.Time

	flushMu sync.Mutex
	wake    chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewRecorder(sink Sink, cfg Config, metrics *Metrics, logger ...*zap.Logger) *Recorder {
	l := zap.L().Named("audit.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.recorder")
	}

	return &Recorder{
		cfg:     cfg.withDefaults(),
		sink:    sink,
		metrics: metrics,
		logger:  l,
		now:     time.Now,
		wake:    make(chan struct{}, 1),
	}
}

// Start launches the flush loop. It stops when ctx is cancelled or Close is
// called. Calling Start more than once has no effect.
func (r *Recorder) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		loopCtx, cancel := context.WithCancel(ctx)
		r.mu.Lock()
		r.cancel = cancel
		r.done = make(chan struct{})
		r.mu.Unlock()
		go r.loop(loopCtx)
	})
}

func (r *Recorder) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	r.logger.Info("audit recorder started",
		zap.Int("batch_size", r.cfg.BatchSize),
		zap.Duration("interval", r.cfg.Interval),
		zap.Int("max_queue", r.cfg.MaxQueue),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("audit recorder stopped")
			return
		case <-ticker.C:
			r.flushDue(ctx)
		case <-r.wake:
			r.flushDue(ctx)
		}
	}
}

// Log enqueues e. It never blocks on the sink.
func (r *Recorder) Log(e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = r.now().UTC()
	}
	if e.Tipo == "" {
		e.Tipo = EventCustom
	}

	r.mu.Lock()
	r.queue = append(r.queue, e)
	dropped := r.trimLocked()
	n := len(r.queue)
	r.mu.Unlock()

	r.metrics.addDropped(dropped)
	r.metrics.setQueued(n)
	if dropped > 0 {
		r.logger.Warn("audit queue full, oldest events dropped", zap.Int("dropped", dropped))
	}

	if n >= r.cfg.BatchSize {
		select {
		case r.wake <- struct{}{}:
		default:
		}
	}
}

// Len reports how many events are waiting.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// Pending returns a copy of the waiting events, oldest first.
func (r *Recorder) Pending() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.queue))
	copy(out, r.queue)
	return out
}

// Flush sends every queued event, batch by batch, ignoring any pending
// backoff. It stops at the first sink error and returns it.
func (r *Recorder) Flush(ctx context.Context) error {
	r.flushMu.Lock()
	defer r.flushMu.Unlock()

	for {
		batch := r.take()
		if len(batch) == 0 {
			return nil
		}

		if err := r.sink.Send(ctx, batch); err != nil {
			r.requeue(batch)
			wait := r.fail()
			r.metrics.incFailed()
			r.logger.Warn("audit flush failed, batch requeued",
				zap.Int("batch", len(batch)),
				zap.Duration("retry_in", wait),
				zap.Error(err),
			)
			return err
		}

		r.succeed()
		r.metrics.addSent(len(batch))
		r.metrics.setQueued(r.Len())
	}
}

// flushDue is the loop's flush: it skips while a backoff is pending.
func (r *Recorder) flushDue(ctx context.Context) {
	r.mu.Lock()
	waiting := !r.retryAt.IsZero() && r.now().Before(r.retryAt)
	empty := len(r.queue) == 0
	r.mu.Unlock()
	if waiting || empty {
		return
	}
	_ = r.Flush(ctx)
}

// Close stops the loop and makes one last flush attempt bounded by ctx.
func (r *Recorder) Close(ctx context.Context) error {
	var err error
	r.closeOnce.Do(func() {
		r.mu.Lock()
		cancel, done := r.cancel, r.done
		r.mu.Unlock()

		if cancel != nil {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
		}

		err = r.Flush(ctx)
		if err != nil {
			r.logger.Error("final audit flush failed", zap.Int("lost", r.Len()), zap.Error(err))
		}
	})
	return err
}

func (r *Recorder) take() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(len(r.queue), r.cfg.BatchSize)
	if n == 0 {
		return nil
	}
	batch := make([]Event, n)
	copy(batch, r.queue[:n])
	r.queue = r.queue[n:]
	return batch
}

func (r *Recorder) requeue(batch []Event) {
	r.mu.Lock()
	r.queue = append(append(make([]Event, 0, len(batch)+len(r.queue)), batch...), r.queue...)
	dropped := r.trimLocked()
	n := len(r.queue)
	r.mu.Unlock()

	r.metrics.addDropped(dropped)
	r.metrics.setQueued(n)
}

// trimLocked drops the oldest events above MaxQueue. Caller holds r.mu.
func (r *Recorder) trimLocked() int {
	over := len(r.queue) - r.cfg.MaxQueue
	if over <= 0 {
		return 0
	}
	r.queue = append([]Event(nil), r.queue[over:]...)
	return over
}

func (r *Recorder) fail() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backoff == 0 {
		r.backoff = r.cfg.BaseBackoff
	} else {
		r.backoff *= 2
	}
	if r.backoff > r.cfg.MaxBackoff {
		r.backoff = r.cfg.MaxBackoff
	}
	r.retryAt = r.now().Add(r.backoff)
	return r.backoff
}

func (r *Recorder) succeed() {
	r.mu.Lock()
	r.backoff = 0
	r.retryAt = time.Time{}
	r.mu.Unlock()
}
