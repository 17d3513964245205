package tick_test

import (
	"testing"
	"time"

	"github.com/romshark/tick"

	"github.com/stretchr/testify/require"
)

func TestCountdown(t *testing.T) {
	for _, td := range []struct {
		name     string
		duration time.Duration
		interval time.Duration
		opts     []tick.Option
		expect   []time.Duration
	}{
		{
			name:     "uneven",
			duration: 1000 * ms,
			interval: 300 * ms,
			expect:   durations(700*ms, 400*ms, 100*ms, 0),
		},
		{
			name:     "even",
			duration: 900 * ms,
			interval: 300 * ms,
			expect:   durations(600*ms, 300*ms, 0),
		},
		{
			name:     "interval exceeds duration",
			duration: 100 * ms,
			interval: time.Second,
			expect:   durations(0),
		},
		{
			name:     "no tick on finish",
			duration: 1000 * ms,
			interval: 300 * ms,
			opts:     []tick.Option{tick.TickOnFinish(false)},
			expect:   durations(700*ms, 400*ms, 100*ms),
		},
		{
			name:     "tick on start",
			duration: 900 * ms,
			interval: 300 * ms,
			opts:     []tick.Option{tick.TickOnStart(true)},
			expect:   durations(900*ms, 600*ms, 300*ms, 0),
		},
	} {
		t.Run(td.name, func(t *testing.T) {
			p, s := newClock()
			rec := &recorder{}
			e, err := tick.NewCountdown(
				s, td.duration, td.interval, rec.listener(), td.opts...,
			)
			require.NoError(t, err)
			require.Equal(t, tick.ModeCountdown, e.Mode())
			require.Equal(t, td.duration, e.Duration())
			require.NoError(t, e.Start())
			require.Equal(t, durations(td.duration), rec.values("start"))

			p.Advance(td.duration - 1)
			require.Zero(t, rec.count("finish"))

			p.Advance(10 * td.duration)
			require.Equal(t, td.expect, rec.values("tick"))
			require.Equal(t, durations(0), rec.values("finish"))
			require.Equal(t, tick.StateIdle, e.State())
			require.Zero(t, s.Len())
		})
	}
}

func TestCountdownFinishOrder(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewCountdown(s, 200*ms, 100*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Advance(200 * ms)
	require.Equal(t, []string{"start", "tick", "tick", "finish"}, rec.kinds())
}

func TestCountdownPauseShiftsDeadline(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewCountdown(s, 1000*ms, 300*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Advance(500 * ms)
	e.Pause()
	require.Equal(t, durations(500*ms), rec.values("pause"))

	p.Advance(1000 * ms)
	require.Equal(t, 500*ms, e.Value())
	require.Zero(t, rec.count("finish"))

	require.NoError(t, e.Resume())
	require.Equal(t, durations(500*ms), rec.values("resume"))

	p.Advance(99 * ms)
	require.Equal(t, durations(700*ms), rec.values("tick"))

	p.Advance(1 * ms)
	require.Equal(t, durations(700*ms, 400*ms), rec.values("tick"))

	p.Advance(300 * ms)
	require.Equal(t, durations(700*ms, 400*ms, 100*ms), rec.values("tick"))
	require.Zero(t, rec.count("finish"))

	p.Advance(100 * ms)
	require.Equal(t, durations(700*ms, 400*ms, 100*ms, 0), rec.values("tick"))
	require.Equal(t, 1, rec.count("finish"))
	require.Equal(t, start.Add(2000*ms), p.Now())
}

func TestCountdownStalledPastDeadline(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewCountdown(s, 1000*ms, 300*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Jump(5 * time.Second)
	require.Equal(t, durations(0), rec.values("tick"))
	require.Equal(t, durations(0), rec.values("finish"))

	p.Advance(time.Second)
	require.Equal(t, 1, rec.count("tick"))
	require.Equal(t, 1, rec.count("finish"))
}

func TestCountdownStalled(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewCountdown(s, 1000*ms, 300*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Jump(650 * ms)
	require.Equal(t, durations(400*ms), rec.values("tick"))

	p.Advance(350 * ms)
	require.Equal(t, durations(400*ms, 100*ms, 0), rec.values("tick"))
	require.Equal(t, 1, rec.count("finish"))
}

func TestCountdownCancel(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewCountdown(s, 1000*ms, 300*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Advance(250 * ms)
	require.Equal(t, 750*ms, e.Value())
	e.Cancel()
	require.Equal(t, durations(750*ms), rec.values("cancel"))

	p.Advance(2 * time.Second)
	require.Zero(t, rec.count("tick"))
	require.Zero(t, rec.count("finish"))
}

func TestCountdownRestartAfterFinish(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewCountdown(s, 200*ms, 100*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())
	p.Advance(200 * ms)
	require.Equal(t, 1, rec.count("finish"))

	// Restarting an idle engine must not report a cancellation.
	require.NoError(t, e.Restart())
	require.Zero(t, rec.count("cancel"))

	p.Advance(200 * ms)
	require.Equal(t, durations(100*ms, 0, 100*ms, 0), rec.values("tick"))
	require.Equal(t, 2, rec.count("finish"))
}

func TestTicker(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewTicker(s, 500*ms, rec.listener())
	require.NoError(t, err)
	require.Equal(t, 500*ms, e.Interval())
	require.NoError(t, e.Start())

	p.Advance(499 * ms)
	require.Zero(t, rec.count("tick"))

	p.Advance(1 * ms)
	require.Equal(t, durations(500*ms), rec.values("tick"))
	require.Equal(t, tick.StateIdle, e.State())

	p.Advance(5 * time.Second)
	require.Equal(t, 1, rec.count("tick"))
	require.Zero(t, rec.count("finish"))
	require.Zero(t, rec.count("cancel"))
}

func TestTickerStalled(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewTicker(s, 500*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Jump(time.Second)
	require.Equal(t, durations(500*ms), rec.values("tick"))
}

func TestTickerPauseResume(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewTicker(s, 500*ms, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Advance(200 * ms)
	e.Pause()
	p.Advance(1000 * ms)
	require.Zero(t, rec.count("tick"))

	require.NoError(t, e.Resume())
	p.Advance(299 * ms)
	require.Zero(t, rec.count("tick"))

	p.Advance(1 * ms)
	require.Equal(t, durations(500*ms), rec.values("tick"))
	require.Equal(t, start.Add(1500*ms), p.Now())
}

func TestTickerZeroDelay(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewTicker(s, 0, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())

	p.Advance(0)
	require.Equal(t, durations(0), rec.values("tick"))
	require.Equal(t, tick.StateIdle, e.State())
}

func TestTickerZeroDelayPausedBeforeDelivery(t *testing.T) {
	p, s := newClock()
	rec := &recorder{}
	e, err := tick.NewTicker(s, 0, rec.listener())
	require.NoError(t, err)
	require.NoError(t, e.Start())
	e.Pause()

	p.Advance(0)
	require.Zero(t, rec.count("tick"))

	e.Cancel()
	p.Advance(time.Second)
	require.Zero(t, rec.count("tick"))
	require.Equal(t, []string{"start", "pause", "cancel"}, rec.kinds())
}
