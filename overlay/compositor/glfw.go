package compositor

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/confetti"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWSession places the layer as an undecorated, transparent, non-resizable
// GLFW window covering its slot on the primary monitor. Framebuffer size
// changes become configure events and the close button becomes Closed.
//
// GLFW must be driven from the main OS thread; callers lock it before
// Connect.
type GLFWSession struct {
	window *glfw.Window
	queue  Queue
	serial uint32
	log    confetti.Logger
}

// Connect initialises GLFW and checks that an output is available.
func Connect(log confetti.Logger) (*GLFWSession, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	if glfw.GetPrimaryMonitor() == nil {
		glfw.Terminate()
		return nil, ErrNoOutput
	}

	s := &GLFWSession{log: confetti.OrNop(log)}
	glfw.SetMonitorCallback(s.onMonitor)
	return s, nil
}

func (s *GLFWSession) Commit(req LayerRequest) error {
	if s.window != nil {
		return ErrAlreadyCommitted
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return ErrNoOutput
	}
	mode := monitor.GetVideoMode()
	mx, my := monitor.GetPos()
	place := Place(req, Rect{X: mx, Y: my, Width: mode.Width, Height: mode.Height})

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	glfw.WindowHint(glfw.FocusOnShow, glfw.False)
	if req.Layer >= LayerTop {
		glfw.WindowHint(glfw.Floating, glfw.True)
	} else {
		glfw.WindowHint(glfw.Floating, glfw.False)
	}

	win, err := glfw.CreateWindow(place.Width, place.Height, req.Namespace, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}
	if win.GetAttrib(glfw.TransparentFramebuffer) != glfw.True {
		win.Destroy()
		return ErrNoOverlaySupport
	}
	win.SetPos(place.X, place.Y)

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.pushConfigure(width, height)
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		s.queue.Push(ClosedEvent{})
	})
	win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		s.queue.Push(ScaleEvent{X: x, Y: y})
	})
	s.window = win

	s.log.Debugf("compositor: layer %q at %d,%d %dx%d", req.Namespace, place.X, place.Y, place.Width, place.Height)

	// The compositor answers a commit with the size it settled on.
	width, height := win.GetFramebufferSize()
	s.pushConfigure(width, height)
	return nil
}

func (s *GLFWSession) pushConfigure(width, height int) {
	s.serial++
	s.queue.Push(ConfigureEvent{
		Width:  clampDim(width),
		Height: clampDim(height),
		Serial: s.serial,
	})
}

func clampDim(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}

func (s *GLFWSession) onMonitor(monitor *glfw.Monitor, event glfw.PeripheralEvent) {
	ev := OutputEvent{Kind: OutputAdded, Name: monitor.GetName()}
	if event == glfw.Disconnected {
		ev.Kind = OutputRemoved
	} else if mode := monitor.GetVideoMode(); mode != nil {
		ev.Width, ev.Height, ev.RefreshRate = mode.Width, mode.Height, mode.RefreshRate
	}
	s.queue.Push(ev)
}

func (s *GLFWSession) Dispatch(h Handler, block bool) error {
	if s.window == nil {
		return ErrNotCommitted
	}
	if block && s.queue.Len() == 0 {
		glfw.WaitEvents()
	} else {
		glfw.PollEvents()
	}
	s.queue.Drain(h)
	return nil
}

func (s *GLFWSession) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if s.window == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(s.window)
}

func (s *GLFWSession) Destroy() {
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	glfw.SetMonitorCallback(nil)
	glfw.Terminate()
}
