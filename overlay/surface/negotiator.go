package surface

import (
	"errors"
	"fmt"

	"github.com/gekko3d/confetti"
)

// DefaultExtent replaces a configure dimension of 0 when the compositor
// leaves the size to the client.
const DefaultExtent uint32 = 256

var ErrNotCommitted = errors.New("configure received before the layer was committed")

type State int

const (
	Uninitialized State = iota
	AwaitingFirstConfigure
	Configured
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case AwaitingFirstConfigure:
		return "awaiting-first-configure"
	case Configured:
		return "configured"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Size struct {
	Width  uint32
	Height uint32
}

// ResolveSize applies the stretch rule: a zero dimension becomes DefaultExtent.
func ResolveSize(width, height uint32) Size {
	if width == 0 {
		width = DefaultExtent
	}
	if height == 0 {
		height = DefaultExtent
	}
	return Size{Width: width, Height: height}
}

// Target is the presentation surface the negotiator configures.
type Target interface {
	ConfigureSurface(size Size) error
}

// ResizePolicy decides what happens to configure events after the first one.
type ResizePolicy int

const (
	// ResizeTrack records the new size but leaves the presentation surface
	// at the size it was first configured with.
	ResizeTrack ResizePolicy = iota
	// ResizeApply reconfigures the presentation surface on every configure.
	ResizeApply
)

// Negotiator walks the configure handshake:
// Uninitialized -> AwaitingFirstConfigure -> Configured -> Closed.
type Negotiator struct {
	state      State
	size       Size
	serial     uint32
	configured int
	policy     ResizePolicy
	target     Target
	log        confetti.Logger
}

func NewNegotiator(target Target, policy ResizePolicy, log confetti.Logger) *Negotiator {
	return &Negotiator{
		target: target,
		policy: policy,
		log:    confetti.OrNop(log),
	}
}

func (n *Negotiator) State() State { return n.state }

// Size is the most recent resolved configure size.
func (n *Negotiator) Size() Size { return n.size }

// Serial is the serial of the most recent configure event.
func (n *Negotiator) Serial() uint32 { return n.serial }

// SurfaceConfigurations counts calls made to the target.
func (n *Negotiator) SurfaceConfigurations() int { return n.configured }

func (n *Negotiator) Closed() bool { return n.state == Closed }

// Commit marks the layer request as submitted; configure events are accepted
// from here on.
func (n *Negotiator) Commit() {
	if n.state == Uninitialized {
		n.transition(AwaitingFirstConfigure)
	}
}

// HandleConfigure processes one configure event. The first one configures the
// target; later ones follow the resize policy. Events after Closed are
// dropped. A target failure is returned and leaves the state untouched.
func (n *Negotiator) HandleConfigure(width, height, serial uint32) error {
	switch n.state {
	case Uninitialized:
		return fmt.Errorf("configure serial %d: %w", serial, ErrNotCommitted)
	case Closed:
		n.log.Debugf("surface: configure serial %d ignored after close", serial)
		return nil
	}

	size := ResolveSize(width, height)
	first := n.state == AwaitingFirstConfigure
	if first || n.policy == ResizeApply {
		if err := n.target.ConfigureSurface(size); err != nil {
			return fmt.Errorf("configure surface %dx%d: %w", size.Width, size.Height, err)
		}
		n.configured++
	} else if size != n.size {
		n.log.Debugf("surface: tracking resize %dx%d -> %dx%d (not applied)",
			n.size.Width, n.size.Height, size.Width, size.Height)
	}

	n.size = size
	n.serial = serial
	if first {
		n.log.Infof("surface: configured %dx%d (serial %d)", size.Width, size.Height, serial)
		n.transition(Configured)
	}
	return nil
}

// HandleClosed reacts to the compositor destroying the layer.
func (n *Negotiator) HandleClosed() {
	if n.state != Closed {
		n.log.Infof("surface: closed by compositor")
		n.transition(Closed)
	}
}

// Expire closes the negotiator when the animation lifetime runs out.
func (n *Negotiator) Expire() {
	if n.state != Closed {
		n.log.Debugf("surface: lifetime expired")
		n.transition(Closed)
	}
}

func (n *Negotiator) transition(to State) {
	n.log.Debugf("surface: %s -> %s", n.state, to)
	n.state = to
}
