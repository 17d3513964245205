package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/romshark/tick"
	"github.com/romshark/tick/sched"
	"github.com/romshark/tick/sched/schedtest"

	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T) (*Console, *schedtest.Provider, *bytes.Buffer) {
	t.Helper()
	p := schedtest.NewProvider(time.Date(2021, 6, 20, 10, 0, 0, 0, time.UTC))
	var out bytes.Buffer
	c := &Console{out: &out}
	c.Attach(tick.NewRegistry(sched.NewWith(0, p, nil)))
	return c, p, &out
}

func TestAddAndRun(t *testing.T) {
	c, p, out := newTestConsole(t)

	require.False(t, c.exec("add countdown tea 1s 500ms"))
	require.Contains(t, out.String(), `Added countdown "tea"`)

	out.Reset()
	require.False(t, c.exec("start tea"))
	require.Equal(t, "[tea] started 1s\n", out.String())

	out.Reset()
	p.Advance(time.Second)
	require.Equal(t,
		"[tea] tick 500ms\n[tea] tick 0s\n[tea] finished 0s\n",
		out.String(),
	)
}

func TestPauseResume(t *testing.T) {
	c, p, out := newTestConsole(t)
	require.False(t, c.exec("add interval clock 100ms"))
	require.False(t, c.exec("start clock"))

	p.Advance(150 * time.Millisecond)
	out.Reset()
	require.False(t, c.exec("pause clock"))
	require.Equal(t, "[clock] paused 150ms\n", out.String())

	out.Reset()
	require.False(t, c.exec("list"))
	require.Contains(t, out.String(), "clock")
	require.Contains(t, out.String(), "paused")
	require.Contains(t, out.String(), "1 ticks")

	out.Reset()
	require.False(t, c.exec("resume clock"))
	p.Advance(50 * time.Millisecond)
	require.Equal(t,
		"[clock] resumed 150ms\n[clock] tick 200ms\n",
		out.String(),
	)
}

func TestCancel(t *testing.T) {
	c, _, out := newTestConsole(t)
	require.False(t, c.exec("add ticker alarm 1m"))
	require.False(t, c.exec("add ticker bell 2m"))
	require.False(t, c.exec("start all"))

	out.Reset()
	require.False(t, c.exec("cancel alarm"))
	require.Equal(t, "[alarm] canceled 0s\n", out.String())
	require.Equal(t, []string{"bell"}, c.reg.Keys())

	require.False(t, c.exec("cancel all"))
	require.Zero(t, c.reg.Len())

	out.Reset()
	require.False(t, c.exec("list"))
	require.Equal(t, "No timers\n", out.String())
}

func TestRestart(t *testing.T) {
	c, p, out := newTestConsole(t)
	require.False(t, c.exec("add interval clock 100ms"))
	require.False(t, c.exec("start clock"))
	p.Advance(250 * time.Millisecond)

	out.Reset()
	require.False(t, c.exec("restart clock"))
	require.Equal(t, "[clock] canceled 250ms\n[clock] started 0s\n", out.String())
}

func TestErrors(t *testing.T) {
	c, _, out := newTestConsole(t)

	for _, td := range []struct {
		line   string
		expect string
	}{
		{"start nope", `No timer "nope"`},
		{"pause nope", `No timer "nope"`},
		{"resume nope", `No timer "nope"`},
		{"cancel nope", `No timer "nope"`},
		{"restart nope", `No timer "nope"`},
		{"start", "Usage: start"},
		{"add ticker", "Usage: add"},
		{"add ticker t soon", "Invalid duration"},
		{"add countdown t 1s often", "Invalid interval"},
		{"add stopwatch t 1s", "unknown kind"},
		{"add interval t 0s", "interval must be positive"},
		{"frobnicate", "Unknown command: frobnicate"},
	} {
		t.Run(td.line, func(t *testing.T) {
			out.Reset()
			require.False(t, c.exec(td.line))
			require.Contains(t, out.String(), td.expect)
		})
	}

	require.False(t, c.exec("add ticker t 1s"))
	out.Reset()
	require.False(t, c.exec("add ticker t 1s"))
	require.Contains(t, out.String(), "duplicate key")
}

func TestQuit(t *testing.T) {
	c, _, _ := newTestConsole(t)
	require.False(t, c.exec(""))
	require.True(t, c.exec("quit"))
	require.True(t, c.exec("Q"))
}
