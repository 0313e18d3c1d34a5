package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func newTestProfiler(clock *fakeClock, options ...ProfilerOption) *Profiler {
	p := NewProfiler(options...)
	p.now = clock.now
	p.lastTime = clock.now()
	return p
}

func TestProfilerLogsOncePerInterval(t *testing.T) {
	buf := captureLog(t)
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := newTestProfiler(clock, WithUpdateInterval(500*time.Millisecond))

	for range 4 {
		clock.advance(100 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	assert.Empty(t, buf.String())

	clock.advance(100 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "[Profiler] FPS: 10.00")

	clock.advance(100 * time.Millisecond)
	assert.False(t, p.Tick(), "frame counter and interval reset after logging")
}

func TestProfilerAnnotation(t *testing.T) {
	buf := captureLog(t)
	clock := &fakeClock{t: time.Unix(0, 0)}
	calls := 0
	p := newTestProfiler(clock, WithAnnotation(func() string {
		calls++
		return "pos (0.00, 0.00, 3.00)"
	}))

	clock.advance(time.Second)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "| pos (0.00, 0.00, 3.00)")
	assert.Equal(t, 1, calls)
}

func TestProfilerDefaults(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(0))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.Nil(t, p.annotation)
}
