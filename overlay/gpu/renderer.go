package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/confetti"
	"github.com/gekko3d/confetti/overlay/surface"
)

// uniformBuffer lets UniformState push its block through the device queue.
type uniformBuffer struct {
	queue  *wgpu.Queue
	buffer *wgpu.Buffer
}

func (u uniformBuffer) WriteUniforms(offset uint64, data []byte) error {
	return u.queue.WriteBuffer(u.buffer, offset, data)
}

// Renderer owns every GPU resource of the overlay. All methods must be called
// from the thread driving the frame loop.
type Renderer struct {
	state  *State
	config *wgpu.SurfaceConfiguration

	pipeline        *wgpu.RenderPipeline
	bindGroupLayout *wgpu.BindGroupLayout
	bindGroup       *wgpu.BindGroup

	uniformBuffer *wgpu.Buffer
	uniforms      *confetti.UniformState

	vertexBuffer   *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	vertexCount    uint32
	instanceCount  uint32

	log confetti.Logger
}

// NewRenderer uploads the quad and the particle instances, creates the
// uniform binding and builds the pipeline for the surface format. It takes
// ownership of state.
func NewRenderer(state *State, vertices []confetti.Vertex, instances []confetti.Instance, log confetti.Logger) (*Renderer, error) {
	r := &Renderer{
		state:         state,
		vertexCount:   uint32(len(vertices)),
		instanceCount: uint32(len(instances)),
		log:           confetti.OrNop(log),
	}
	if err := r.init(vertices, instances); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) init(vertices []confetti.Vertex, instances []confetti.Instance) error {
	device := r.state.Device
	var err error

	var initial confetti.Uniforms
	r.uniformBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Uniform Buffer",
		Contents: initial.Bytes(),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("uniform buffer: %w", err)
	}
	r.uniforms = confetti.NewUniformState(uniformBuffer{queue: r.state.Queue, buffer: r.uniformBuffer})

	r.bindGroupLayout, err = UniformBindGroupLayout(device)
	if err != nil {
		return fmt.Errorf("uniform bind group layout: %w", err)
	}
	r.bindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Uniform Bind Group",
		Layout: r.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: r.uniformBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("uniform bind group: %w", err)
	}

	if len(vertices) == 0 {
		return fmt.Errorf("vertex buffer: no vertices")
	}
	r.vertexBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Rectangle Vertex Buffer",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return fmt.Errorf("vertex buffer: %w", err)
	}

	// A zero-population burst still binds a one-element buffer; the draw
	// call uses instanceCount, not the buffer length.
	upload := instances
	if len(upload) == 0 {
		upload = make([]confetti.Instance, 1)
	}
	r.instanceBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Instance Buffer",
		Contents: wgpu.ToBytes(upload),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return fmt.Errorf("instance buffer: %w", err)
	}

	r.pipeline, err = BuildPipeline(device, r.state.Format, r.bindGroupLayout)
	if err != nil {
		return err
	}

	r.log.Debugf("gpu: %d vertices x %d instances, format %v", r.vertexCount, r.instanceCount, r.state.Format)
	return nil
}

// ConfigureSurface sizes the swapchain. It satisfies surface.Target.
func (r *Renderer) ConfigureSurface(size surface.Size) error {
	if r.config == nil {
		r.config = r.state.SurfaceConfiguration(size.Width, size.Height)
	} else {
		r.config.Width = size.Width
		r.config.Height = size.Height
	}
	r.state.Surface.Configure(r.state.Adapter, r.state.Device, r.config)
	r.log.Debugf("gpu: surface configured %dx%d", size.Width, size.Height)
	return nil
}

// SetTime updates the time uniform. It satisfies frame.Renderer.
func (r *Renderer) SetTime(seconds float32) error {
	return r.uniforms.SetTime(seconds)
}

func (r *Renderer) InstanceCount() uint32 { return r.instanceCount }
func (r *Renderer) VertexCount() uint32   { return r.vertexCount }

// RenderFrame draws every instance of the quad into the next surface texture
// over a transparent clear and presents it.
func (r *Renderer) RenderFrame() error {
	if r.config == nil {
		return fmt.Errorf("%w: surface not configured", ErrAcquire)
	}

	nextTexture, err := r.state.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAcquire, err)
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("texture view: %w", err)
	}
	defer view.Release()

	encoder, err := r.state.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{}, // fully transparent
		}},
	})
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.SetPipeline(r.pipeline)
	pass.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, r.instanceBuffer, 0, wgpu.WholeSize)
	pass.Draw(r.vertexCount, r.instanceCount, 0, 0)
	err = pass.End()
	pass.Release()
	if err != nil {
		return fmt.Errorf("render pass: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish commands: %w", err)
	}
	defer cmd.Release()

	r.state.Queue.Submit(cmd)
	r.state.Surface.Present()
	return nil
}

// Release frees buffers and the pipeline, then the GPU state with the
// presentation surface. Call it before the overlay window is destroyed.
func (r *Renderer) Release() {
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}
	if r.bindGroupLayout != nil {
		r.bindGroupLayout.Release()
		r.bindGroupLayout = nil
	}
	for _, b := range []**wgpu.Buffer{&r.uniformBuffer, &r.vertexBuffer, &r.instanceBuffer} {
		if *b != nil {
			(*b).Release()
			*b = nil
		}
	}
	if r.state != nil {
		r.state.Release()
		r.state = nil
	}
}
