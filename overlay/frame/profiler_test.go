package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfilerAverages(t *testing.T) {
	p := NewProfiler()
	now := time.Unix(0, 0)
	p.now = func() time.Time { return now }

	for i := 0; i < 4; i++ {
		p.BeginScope("render")
		now = now.Add(time.Duration(i+1) * time.Millisecond)
		p.EndScope("render")
	}
	p.EndScope("never-started")

	assert.Equal(t, 4, p.Calls["render"])
	assert.Equal(t, 10*time.Millisecond, p.Totals["render"])
	assert.Equal(t, 2500*time.Microsecond, p.Average("render"))
	assert.Zero(t, p.Average("never-started"))
	assert.Equal(t, []string{"render"}, p.Order)

	p.SetCount("frames", 4)
	out := p.StatsString()
	assert.Contains(t, out, "render    : 2.50 ms (4)")
	assert.Contains(t, out, "frames    : 4")
}
