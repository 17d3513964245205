package tick

import "log/slog"

// Option configures an Engine.
type Option func(*options)

type options struct {
	tickOnStart  bool
	tickOnFinish bool
	log          *slog.Logger
}

// TickOnStart makes the engine emit a tick with the initial value
// right after OnStart.
func TickOnStart(enabled bool) Option {
	return func(o *options) { o.tickOnStart = enabled }
}

// TickOnFinish controls whether a countdown emits a final zero tick
// right before OnFinish. Enabled by default.
func TickOnFinish(enabled bool) Option {
	return func(o *options) { o.tickOnFinish = enabled }
}

// WithLogger sets the logger, slog.Default is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}
