// Package compositor is the contract between the overlay and the windowing
// system: a session that places one layer surface and reports configure,
// close and output events to a Handler.
package compositor

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

var (
	ErrConnect          = errors.New("cannot connect to compositor")
	ErrNoOutput         = errors.New("compositor exposes no output")
	ErrNoOverlaySupport = errors.New("compositor cannot place a transparent overlay")
	ErrNotCommitted     = errors.New("layer surface not committed")
	ErrAlreadyCommitted = errors.New("layer surface already committed")
)

type Layer int

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

// Anchor is a set of screen edges the surface sticks to.
type Anchor uint8

const (
	AnchorTop Anchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight

	AnchorAll = AnchorTop | AnchorBottom | AnchorLeft | AnchorRight
)

func (a Anchor) Has(edges Anchor) bool { return a&edges == edges }

// LayerRequest asks for a layer surface. A zero Width or Height means
// "stretch between the anchored edges".
type LayerRequest struct {
	Namespace string
	Layer     Layer
	Anchor    Anchor
	Width     uint32
	Height    uint32
}

// Handler receives compositor events, one method per kind. Calls happen on
// the goroutine that runs Session.Dispatch.
type Handler interface {
	Configure(ev ConfigureEvent)
	Closed()
	OutputChanged(ev OutputEvent)
	ScaleChanged(ev ScaleEvent)
}

// Session is one connection to the compositor owning at most one layer
// surface.
type Session interface {
	// Commit creates the layer surface and submits the request. The first
	// configure event follows on a later Dispatch.
	Commit(req LayerRequest) error
	// Dispatch delivers queued events to h. With block set it waits for at
	// least one event first.
	Dispatch(h Handler, block bool) error
	// SurfaceDescriptor exposes the committed surface to the GPU backend.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	// Destroy releases the layer surface and the connection. The GPU
	// surface built from SurfaceDescriptor must be released first.
	Destroy()
}
