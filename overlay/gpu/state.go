package gpu

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

var (
	ErrNoAdapter     = errors.New("no compatible GPU adapter")
	ErrNoDevice      = errors.New("GPU device request failed")
	ErrUnsupported   = errors.New("surface not supported by adapter")
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrAcquire       = errors.New("failed to acquire next surface texture")
)

// State holds the GPU objects shared by the renderer: the presentation
// surface and the adapter/device/queue selected for it.
type State struct {
	Instance *wgpu.Instance
	Surface  *wgpu.Surface
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue

	Format      wgpu.TextureFormat
	AlphaMode   wgpu.CompositeAlphaMode
	PresentMode wgpu.PresentMode
}

// NewState wraps the overlay surface described by desc and picks an adapter
// and device able to present to it. The surface is left unconfigured.
func NewState(desc *wgpu.SurfaceDescriptor) (*State, error) {
	s := &State{Instance: wgpu.CreateInstance(nil)}
	s.Surface = s.Instance.CreateSurface(desc)

	adapter, err := s.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: s.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		s.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}
	s.Adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Confetti Device",
	})
	if err != nil {
		s.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	s.Device = device
	s.Queue = device.GetQueue()

	caps := s.Surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		s.Release()
		return nil, ErrUnsupported
	}
	s.Format = pickFormat(caps.Formats)
	s.AlphaMode = pickAlphaMode(caps.AlphaModes)
	s.PresentMode = wgpu.PresentModeFifo

	return s, nil
}

// pickFormat prefers BGRA8Unorm, the format compositors scan out directly.
func pickFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if f == wgpu.TextureFormatBGRA8Unorm {
			return f
		}
	}
	return formats[0]
}

// pickAlphaMode prefers premultiplied alpha so transparent pixels show the
// desktop underneath the overlay.
func pickAlphaMode(modes []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	for _, m := range modes {
		if m == wgpu.CompositeAlphaModePremultiplied {
			return m
		}
	}
	return modes[0]
}

// SurfaceConfiguration describes the swapchain for a width×height drawable.
func (s *State) SurfaceConfiguration(width, height uint32) *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      s.Format,
		Width:       width,
		Height:      height,
		PresentMode: s.PresentMode,
		AlphaMode:   s.AlphaMode,
	}
}

// Release drops everything, surface first. Safe on a partially built State.
func (s *State) Release() {
	if s.Surface != nil {
		s.Surface.Release()
		s.Surface = nil
	}
	if s.Queue != nil {
		s.Queue.Release()
		s.Queue = nil
	}
	if s.Device != nil {
		s.Device.Release()
		s.Device = nil
	}
	if s.Adapter != nil {
		s.Adapter.Release()
		s.Adapter = nil
	}
	if s.Instance != nil {
		s.Instance.Release()
		s.Instance = nil
	}
}
