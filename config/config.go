// Package config loads timer definitions from YAML and applies
// them to a tick.Registry.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/romshark/tick"

	"gopkg.in/yaml.v3"
)

// Timer kinds.
const (
	KindInterval  = "interval"
	KindCountdown = "countdown"
	KindTicker    = "ticker"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Log    Log     `yaml:"log"`
	Timers []Timer `yaml:"timers"`
}

type Log struct {
	// Level is one of debug, info, warn and error.
	Level string `yaml:"level"`
	// Format is either text or json.
	Format string `yaml:"format"`
}

// Timer defines a single registry entry.
// For tickers Interval is the delay.
type Timer struct {
	Name         string        `yaml:"name"`
	Kind         string        `yaml:"kind"`
	Duration     time.Duration `yaml:"duration,omitempty"`
	Interval     time.Duration `yaml:"interval"`
	TickOnStart  bool          `yaml:"tick_on_start,omitempty"`
	TickOnFinish *bool         `yaml:"tick_on_finish,omitempty"`
	Autostart    bool          `yaml:"autostart,omitempty"`
}

// Default returns a pomodoro setup.
func Default() *Config {
	return &Config{
		Log: Log{Level: "info", Format: "text"},
		Timers: []Timer{
			{
				Name:     "work",
				Kind:     KindCountdown,
				Duration: 25 * time.Minute,
				Interval: time.Second,
			},
			{
				Name:     "short-break",
				Kind:     KindCountdown,
				Duration: 5 * time.Minute,
				Interval: time.Second,
			},
			{
				Name:     "long-break",
				Kind:     KindCountdown,
				Duration: 15 * time.Minute,
				Interval: time.Second,
			},
		},
	}
}

// Parse decodes and validates a YAML document.
// Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	c := &Config{Log: Log{Level: "info", Format: "text"}}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	e := yaml.NewEncoder(&buf)
	e.SetIndent(2)
	if err := e.Encode(c); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks log settings, timer names and kind specific durations.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	names := make(map[string]struct{}, len(c.Timers))
	for i, t := range c.Timers {
		if t.Name == "" {
			return fmt.Errorf("%w: timer %d: missing name", ErrInvalid, i)
		}
		if _, ok := names[t.Name]; ok {
			return fmt.Errorf("%w: duplicate timer %q", ErrInvalid, t.Name)
		}
		names[t.Name] = struct{}{}
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the durations required by the timer's kind.
func (t Timer) Validate() error {
	switch t.Kind {
	case KindInterval:
		if t.Interval <= 0 {
			return fmt.Errorf("%w: timer %q: interval must be positive",
				ErrInvalid, t.Name)
		}
	case KindCountdown:
		if t.Duration <= 0 {
			return fmt.Errorf("%w: timer %q: duration must be positive",
				ErrInvalid, t.Name)
		}
		if t.Interval <= 0 {
			return fmt.Errorf("%w: timer %q: interval must be positive",
				ErrInvalid, t.Name)
		}
	case KindTicker:
		if t.Interval < 0 {
			return fmt.Errorf("%w: timer %q: delay must not be negative",
				ErrInvalid, t.Name)
		}
	default:
		return fmt.Errorf("%w: timer %q: unknown kind %q",
			ErrInvalid, t.Name, t.Kind)
	}
	return nil
}

// Options returns the engine options the timer configures.
func (t Timer) Options() []tick.Option {
	opts := []tick.Option{tick.TickOnStart(t.TickOnStart)}
	if t.TickOnFinish != nil {
		opts = append(opts, tick.TickOnFinish(*t.TickOnFinish))
	}
	return opts
}

// Register creates the timer's engine in r.
func (t Timer) Register(
	r *tick.Registry,
	l tick.Listener,
	opts ...tick.Option,
) (*tick.Engine, error) {
	opts = append(t.Options(), opts...)
	switch t.Kind {
	case KindInterval:
		return r.Interval(t.Name, t.Interval, l, opts...)
	case KindCountdown:
		return r.Countdown(t.Name, t.Duration, t.Interval, l, opts...)
	case KindTicker:
		return r.Ticker(t.Name, t.Interval, l, opts...)
	}
	return nil, fmt.Errorf("%w: timer %q: unknown kind %q",
		ErrInvalid, t.Name, t.Kind)
}

// Apply registers every timer in r, listenerFor provides
// the listener of each timer by name and may be nil.
// Stops at the first failure.
func (c *Config) Apply(
	r *tick.Registry,
	listenerFor func(name string) tick.Listener,
	opts ...tick.Option,
) error {
	for _, t := range c.Timers {
		var l tick.Listener
		if listenerFor != nil {
			l = listenerFor(t.Name)
		}
		if _, err := t.Register(r, l, opts...); err != nil {
			return fmt.Errorf("applying timer %q: %w", t.Name, err)
		}
	}
	return nil
}

// Autostart starts every timer marked autostart.
func (c *Config) Autostart(r *tick.Registry) error {
	var errs []error
	for _, t := range c.Timers {
		if !t.Autostart {
			continue
		}
		if _, err := r.Start(t.Name); err != nil {
			errs = append(errs, fmt.Errorf("starting %q: %w", t.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Logger builds a logger writing to w as configured.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	o := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, o)), nil
	}
	return slog.New(slog.NewTextHandler(w, o)), nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return l, nil
}
