package gomorekit

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Debounce returns a function that delays the execution of fn until `delay` has passed
// since the last call to the returned function.
// It panics if fn is nil or delay is negative.
func Debounce(fn func(), delay time.Duration) func() {
	if fn == nil {
		panic("gomorekit: Debounce: " + ErrNilFunc.Error())
	}
	d, err := NewDebouncer(func(struct{}) { fn() }, delay)
	if err != nil {
		panic("gomorekit: Debounce: " + err.Error())
	}
	return func() {
		d.Call(struct{}{})
	}
}

// DebounceFunc is like Debounce, but the returned function takes an argument.
// When the delay elapses fn runs once, with the argument of the most recent call.
func DebounceFunc[T any](fn func(T), delay time.Duration, options ...DebounceOption) func(T) {
	d, err := NewDebouncer(fn, delay, options...)
	if err != nil {
		panic("gomorekit: DebounceFunc: " + err.Error())
	}
	return d.Call
}

// Debouncer collapses bursts of calls into a single deferred call of fn.
// At most one call is pending at a time; each Call replaces the pending one
// and restarts the delay. All methods are safe for concurrent use.
//
// fn runs on the clock's timer goroutine and its return is not observed.
// A panic in fn is not recovered.
type Debouncer[T any] struct {
	fn       func(T)
	delay    time.Duration
	clock    Clock
	logger   *zap.Logger
	observer DebounceObserver

	mu      sync.Mutex
	timer   Timer
	pending bool
	arg     T
	callID  uint64
}

// NewDebouncer creates a Debouncer that runs fn once delay has passed without
// further calls.
func NewDebouncer[T any](fn func(T), delay time.Duration, options ...DebounceOption) (*Debouncer[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeDelay, delay)
	}

	cfg := newDebounceConfig(options)
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if cfg.Name != "" {
		logger = logger.With(zap.String("debouncer", cfg.Name))
	}

	return &Debouncer[T]{
		fn:       fn,
		delay:    delay,
		clock:    cfg.Clock,
		logger:   logger,
		observer: cfg.Observer,
	}, nil
}

// Call schedules fn(arg) to run after the delay, replacing any pending call.
// Observer hooks run after the lock is released, so they may call back into d.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	superseded, hadPending := d.callID, d.pending
	if hadPending {
		d.timer.Stop()
	}

	d.callID++
	id := d.callID
	d.arg = arg
	d.pending = true
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(id)
	})
	d.mu.Unlock()

	if hadPending {
		d.observer.OnSuperseded(superseded)
		d.logger.Debug("pending call superseded", zap.Uint64("call", superseded))
	}
	d.observer.OnScheduled(id)
	d.logger.Debug("call scheduled", zap.Uint64("call", id), zap.Duration("delay", d.delay))
}

// Cancel drops the pending call, if any. It reports whether a call was pending.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	id := d.callID
	d.resetLocked()
	d.mu.Unlock()

	d.observer.OnCanceled(id)
	d.logger.Debug("pending call canceled", zap.Uint64("call", id))
	return true
}

// Flush runs the pending call now, on the calling goroutine, instead of
// waiting for the delay. It reports whether a call was pending.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	id, arg := d.callID, d.arg
	d.resetLocked()
	d.mu.Unlock()

	d.observer.OnFired(id)
	d.logger.Debug("pending call flushed", zap.Uint64("call", id))
	d.fn(arg)
	return true
}

// Pending reports whether a call is waiting for its delay to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// fire runs on the timer goroutine. A timer that lost the race with Stop
// still gets here, so anything but the latest pending call is dropped.
func (d *Debouncer[T]) fire(id uint64) {
	d.mu.Lock()
	if !d.pending || id != d.callID {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.resetLocked()
	d.mu.Unlock()

	d.observer.OnFired(id)
	d.logger.Debug("firing debounced call", zap.Uint64("call", id))
	d.fn(arg)
}

func (d *Debouncer[T]) resetLocked() {
	var zero T
	d.arg = zero
	d.timer = nil
	d.pending = false
}
