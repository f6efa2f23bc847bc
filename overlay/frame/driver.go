package frame

import (
	"fmt"
	"time"

	"github.com/gekko3d/confetti"
)

// Renderer is the GPU side of one frame.
type Renderer interface {
	SetTime(seconds float32) error
	// RenderFrame acquires the next image, records and submits one pass and
	// presents it.
	RenderFrame() error
}

// Gate is the negotiator's view of the loop: it reports a close and is told
// when the lifetime runs out.
type Gate interface {
	Closed() bool
	Expire()
}

// EventPump dispatches pending compositor events without blocking.
type EventPump interface {
	Pump() error
}

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock with a monotonic reading.
func SystemClock() Clock { return systemClock{} }

type StopReason int

const (
	StopLifetime StopReason = iota
	StopClosed
)

func (r StopReason) String() string {
	if r == StopClosed {
		return "closed"
	}
	return "lifetime"
}

// Stats summarises a finished run.
type Stats struct {
	Frames      int
	LastElapsed time.Duration
	Reason      StopReason
}

type Config struct {
	Lifetime time.Duration
	Interval time.Duration
}

// Driver runs the paced draw loop on the calling goroutine.
type Driver struct {
	cfg      Config
	renderer Renderer
	gate     Gate
	pump     EventPump
	clock    Clock
	log      confetti.Logger
	profiler *Profiler
}

// NewDriver builds a driver. pump may be nil; clock defaults to SystemClock.
func NewDriver(cfg Config, renderer Renderer, gate Gate, pump EventPump, clock Clock, log confetti.Logger) *Driver {
	if clock == nil {
		clock = SystemClock()
	}
	return &Driver{
		cfg:      cfg,
		renderer: renderer,
		gate:     gate,
		pump:     pump,
		clock:    clock,
		log:      confetti.OrNop(log),
		profiler: NewProfiler(),
	}
}

func (d *Driver) Profiler() *Profiler { return d.profiler }

// Run draws frames until the gate closes or elapsed time passes the lifetime.
// Both are checked once per iteration. The returned error is fatal: the
// uniform write, image acquisition or submission failed.
func (d *Driver) Run() (Stats, error) {
	var stats Stats
	start := d.clock.Now()

	for {
		if d.gate.Closed() {
			stats.Reason = StopClosed
			break
		}

		elapsed := d.clock.Now().Sub(start)
		stats.LastElapsed = elapsed

		d.profiler.BeginScope("uniforms")
		err := d.renderer.SetTime(float32(elapsed.Seconds()))
		d.profiler.EndScope("uniforms")
		if err != nil {
			return stats, fmt.Errorf("frame %d: %w", stats.Frames, err)
		}

		if elapsed > d.cfg.Lifetime {
			d.gate.Expire()
			stats.Reason = StopLifetime
			break
		}

		d.profiler.BeginScope("render")
		err = d.renderer.RenderFrame()
		d.profiler.EndScope("render")
		if err != nil {
			return stats, fmt.Errorf("frame %d: %w", stats.Frames, err)
		}
		stats.Frames++

		d.profiler.BeginScope("sleep")
		d.clock.Sleep(d.cfg.Interval)
		d.profiler.EndScope("sleep")

		if d.pump != nil {
			if err := d.pump.Pump(); err != nil {
				return stats, fmt.Errorf("dispatch events: %w", err)
			}
		}
	}

	d.profiler.SetCount("frames", stats.Frames)
	d.log.Infof("frame: stopped (%s) after %d frames, %.3fs", stats.Reason, stats.Frames, stats.LastElapsed.Seconds())
	if d.log.DebugEnabled() {
		d.log.Debugf("frame: profile\n%s", d.profiler.StatsString())
	}
	return stats, nil
}
