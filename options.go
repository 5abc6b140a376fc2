package gomorekit

import "go.uber.org/zap"

// DebounceObserver hooks into the lifecycle of debounced calls.
// Every Call gets a new, strictly increasing call ID. Hooks run without the
// debouncer's lock held and may call back into it.
type DebounceObserver interface {
	// OnScheduled is called when a call starts waiting for its delay.
	OnScheduled(callID uint64)
	// OnSuperseded is called when a newer call replaces a pending one.
	OnSuperseded(callID uint64)
	// OnFired is called right before the target function runs.
	OnFired(callID uint64)
	// OnCanceled is called when Cancel drops a pending call.
	OnCanceled(callID uint64)
}

type nopObserver struct{}

func (nopObserver) OnScheduled(uint64)  {}
func (nopObserver) OnSuperseded(uint64) {}
func (nopObserver) OnFired(uint64)      {}
func (nopObserver) OnCanceled(uint64)   {}

// DebounceConfig holds the configuration for a Debouncer.
type DebounceConfig struct {
	Clock    Clock
	Logger   *zap.Logger
	Observer DebounceObserver
	Name     string
}

// DebounceOption defines a function type for configuring a Debouncer.
type DebounceOption func(*DebounceConfig)

// WithClock sets the clock used to schedule deferred calls.
func WithClock(c Clock) DebounceOption {
	return func(cfg *DebounceConfig) {
		cfg.Clock = c
	}
}

// WithLogger sets the logger for lifecycle events. They are logged at debug level.
func WithLogger(l *zap.Logger) DebounceOption {
	return func(cfg *DebounceConfig) {
		cfg.Logger = l
	}
}

// WithObserver sets a custom observer for call lifecycle callbacks.
func WithObserver(obs DebounceObserver) DebounceOption {
	return func(cfg *DebounceConfig) {
		cfg.Observer = obs
	}
}

// WithName attaches a name to every log line of the debouncer.
func WithName(name string) DebounceOption {
	return func(cfg *DebounceConfig) {
		cfg.Name = name
	}
}

func newDebounceConfig(options []DebounceOption) *DebounceConfig {
	cfg := &DebounceConfig{
		Clock:    WallClock(),
		Logger:   zap.NewNop(),
		Observer: nopObserver{},
	}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	return cfg
}
