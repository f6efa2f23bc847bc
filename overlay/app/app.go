// Package app wires the overlay together: it connects to the compositor,
// places the layer, builds the GPU renderer, waits for the first configure
// and then hands control to the frame driver until the burst is over.
package app

import (
	"fmt"
	"math/rand"

	"github.com/gekko3d/confetti"
	"github.com/gekko3d/confetti/overlay/compositor"
	"github.com/gekko3d/confetti/overlay/frame"
	"github.com/gekko3d/confetti/overlay/gpu"
	"github.com/gekko3d/confetti/overlay/surface"
)

// Renderer is what the app needs from the GPU side: surface configuration,
// per-frame work and teardown.
type Renderer interface {
	surface.Target
	frame.Renderer
	Release()
}

type ConnectFunc func(log confetti.Logger) (compositor.Session, error)

// RendererFactory builds the renderer for a committed session.
type RendererFactory func(session compositor.Session, vertices []confetti.Vertex, instances []confetti.Instance, log confetti.Logger) (Renderer, error)

type Option func(*App)

func WithLogger(log confetti.Logger) Option {
	return func(a *App) { a.log = confetti.OrNop(log) }
}

func WithRunID(id string) Option {
	return func(a *App) { a.runID = id }
}

func WithConnect(connect ConnectFunc) Option {
	return func(a *App) { a.connect = connect }
}

func WithRendererFactory(factory RendererFactory) Option {
	return func(a *App) { a.newRenderer = factory }
}

func WithClock(clock frame.Clock) Option {
	return func(a *App) { a.clock = clock }
}

type App struct {
	cfg         confetti.Config
	log         confetti.Logger
	runID       string
	connect     ConnectFunc
	newRenderer RendererFactory
	clock       frame.Clock
}

func New(cfg confetti.Config, opts ...Option) *App {
	a := &App{
		cfg:         cfg,
		log:         confetti.NewNopLogger(),
		connect:     connectGLFW,
		newRenderer: newGPURenderer,
		clock:       frame.SystemClock(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.runID == "" {
		a.runID = confetti.NewRunID()
	}
	return a
}

func (a *App) RunID() string { return a.runID }

// Namespace names the layer surface of this run.
func (a *App) Namespace() string { return "confetti-" + a.runID }

func connectGLFW(log confetti.Logger) (compositor.Session, error) {
	s, err := compositor.Connect(log)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newGPURenderer(session compositor.Session, vertices []confetti.Vertex, instances []confetti.Instance, log confetti.Logger) (Renderer, error) {
	desc := session.SurfaceDescriptor()
	if desc == nil {
		return nil, compositor.ErrNotCommitted
	}
	state, err := gpu.NewState(desc)
	if err != nil {
		return nil, err
	}
	r, err := gpu.NewRenderer(state, vertices, instances, log)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Run plays one burst. It returns once the lifetime has elapsed or the
// compositor closed the layer; both are a normal end. Any error is fatal and
// everything acquired so far has been released when Run returns.
func (a *App) Run() (frame.Stats, error) {
	var stats frame.Stats
	if err := a.cfg.Validate(); err != nil {
		return stats, fmt.Errorf("config: %w", err)
	}

	rng := rand.New(rand.NewSource(a.cfg.RandSeed()))
	instances, err := confetti.GenerateParticles(a.cfg.Population, a.cfg.Palette.Colors(), rng)
	if err != nil {
		return stats, fmt.Errorf("generate particles: %w", err)
	}
	quad := confetti.Quad(a.cfg.QuadSize)
	a.log.Infof("app: %d particles, palette %s, lifetime %s", len(instances), a.cfg.Palette, a.cfg.Lifetime)

	session, err := a.connect(a.log)
	if err != nil {
		return stats, fmt.Errorf("connect: %w", err)
	}
	defer session.Destroy()

	req := compositor.LayerRequest{
		Namespace: a.Namespace(),
		Layer:     compositor.LayerTop,
		Anchor:    compositor.AnchorAll,
	}
	if err := session.Commit(req); err != nil {
		return stats, fmt.Errorf("commit layer: %w", err)
	}

	renderer, err := a.newRenderer(session, quad[:], instances, a.log)
	if err != nil {
		return stats, fmt.Errorf("create renderer: %w", err)
	}
	// Deferred after Destroy so the GPU surface goes before the window.
	defer renderer.Release()

	policy := surface.ResizeTrack
	if a.cfg.ApplyResize {
		policy = surface.ResizeApply
	}
	negotiator := surface.NewNegotiator(renderer, policy, a.log)
	negotiator.Commit()

	events := &eventHandler{negotiator: negotiator, log: a.log}
	for negotiator.State() == surface.AwaitingFirstConfigure {
		if err := session.Dispatch(events, true); err != nil {
			return stats, fmt.Errorf("await configure: %w", err)
		}
		if err := events.err; err != nil {
			return stats, err
		}
	}
	if negotiator.Closed() {
		a.log.Infof("app: layer closed before the first configure")
		stats.Reason = frame.StopClosed
		return stats, nil
	}

	pump := pumpFunc(func() error {
		if err := session.Dispatch(events, false); err != nil {
			return err
		}
		return events.err
	})
	driver := frame.NewDriver(frame.Config{
		Lifetime: a.cfg.Lifetime,
		Interval: a.cfg.FrameInterval,
	}, renderer, negotiator, pump, a.clock, a.log)
	return driver.Run()
}

type pumpFunc func() error

func (f pumpFunc) Pump() error { return f() }

// eventHandler feeds compositor events into the negotiator and keeps the
// first failure for the loop to pick up.
type eventHandler struct {
	negotiator *surface.Negotiator
	err        error
	log        confetti.Logger
}

func (h *eventHandler) Configure(ev compositor.ConfigureEvent) {
	err := h.negotiator.HandleConfigure(ev.Width, ev.Height, ev.Serial)
	if err != nil && h.err == nil {
		h.err = err
	}
}

func (h *eventHandler) Closed() {
	h.negotiator.HandleClosed()
}

func (h *eventHandler) OutputChanged(ev compositor.OutputEvent) {
	switch ev.Kind {
	case compositor.OutputRemoved:
		h.log.Debugf("app: output %q removed", ev.Name)
	default:
		h.log.Debugf("app: output %q %dx%d@%dHz", ev.Name, ev.Width, ev.Height, ev.RefreshRate)
	}
}

func (h *eventHandler) ScaleChanged(ev compositor.ScaleEvent) {
	h.log.Debugf("app: content scale %.2fx%.2f", ev.X, ev.Y)
}
