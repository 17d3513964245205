package schedtest_test

import (
	"testing"
	"time"

	"github.com/romshark/tick/sched/schedtest"

	"github.com/stretchr/testify/require"
)

var start = time.Date(2021, 6, 20, 10, 00, 00, 0, time.UTC)

func TestAdvanceFiresOnTime(t *testing.T) {
	p := schedtest.NewProvider(start)

	var fired []time.Time
	p.AfterFunc(200*time.Millisecond, func() { fired = append(fired, p.Now()) })
	p.AfterFunc(100*time.Millisecond, func() {
		fired = append(fired, p.Now())
		p.AfterFunc(50*time.Millisecond, func() { fired = append(fired, p.Now()) })
	})
	require.Equal(t, 2, p.Pending())

	p.Advance(time.Second)
	require.Equal(t, []time.Time{
		start.Add(100 * time.Millisecond),
		start.Add(150 * time.Millisecond),
		start.Add(200 * time.Millisecond),
	}, fired)
	require.Equal(t, start.Add(time.Second), p.Now())
	require.Zero(t, p.Pending())
}

func TestJumpFiresLate(t *testing.T) {
	p := schedtest.NewProvider(start)

	var fired []time.Time
	p.AfterFunc(100*time.Millisecond, func() { fired = append(fired, p.Now()) })
	p.AfterFunc(500*time.Millisecond, func() { fired = append(fired, p.Now()) })

	p.Jump(350 * time.Millisecond)
	require.Equal(t, []time.Time{start.Add(350 * time.Millisecond)}, fired)
	require.Equal(t, 1, p.Pending())
}

func TestStopAndReset(t *testing.T) {
	p := schedtest.NewProvider(start)

	var counter int
	tm := p.AfterFunc(time.Second, func() { counter++ })
	require.True(t, tm.Stop())
	require.False(t, tm.Stop())

	p.Advance(2 * time.Second)
	require.Zero(t, counter)

	require.False(t, tm.Reset(time.Second))
	p.Advance(500 * time.Millisecond)
	require.Zero(t, counter)
	p.Advance(500 * time.Millisecond)
	require.Equal(t, 1, counter)

	// Negative durations are due immediately.
	tm.Reset(-time.Second)
	p.Advance(0)
	require.Equal(t, 2, counter)
}
