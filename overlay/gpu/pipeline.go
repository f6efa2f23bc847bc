package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/confetti"
	"github.com/gekko3d/confetti/overlay/shaders"
)

// UniformBindGroupLayout is the single binding of the particle program: the
// time block at group 0, binding 0, visible to both stages.
func UniformBindGroupLayout(device *wgpu.Device) (*wgpu.BindGroupLayout, error) {
	return device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Uniform BGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: false,
					MinBindingSize:   confetti.UniformsSize,
				},
			},
		},
	})
}

// ParticleBufferLayouts returns the two vertex streams: the quad corners
// stepped per vertex and the particle attributes stepped per instance.
func ParticleBufferLayouts() ([]wgpu.VertexBufferLayout, error) {
	vertexLayout, err := VertexBufferLayout(confetti.Vertex{}, wgpu.VertexStepModeVertex)
	if err != nil {
		return nil, err
	}
	instanceLayout, err := VertexBufferLayout(confetti.Instance{}, wgpu.VertexStepModeInstance)
	if err != nil {
		return nil, err
	}
	return []wgpu.VertexBufferLayout{vertexLayout, instanceLayout}, nil
}

// AlphaBlending is the standard "over" blend.
var AlphaBlending = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
	},
	Alpha: wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
	},
}

// BuildPipeline compiles the particle program for the given color format.
// A shader error is wrapped in ErrShaderCompile; callers treat it as fatal.
func BuildPipeline(device *wgpu.Device, format wgpu.TextureFormat, uniformLayout *wgpu.BindGroupLayout) (*wgpu.RenderPipeline, error) {
	if err := shaders.Validate(shaders.ParticlesWGSL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}

	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Particles Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.ParticlesWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}
	defer shader.Release()

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Particles Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{uniformLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	buffers, err := ParticleBufferLayouts()
	if err != nil {
		return nil, err
	}

	blend := AlphaBlending
	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Particles Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: shaders.VertexEntry,
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: shaders.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     &blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render pipeline: %w", err)
	}
	return pipeline, nil
}
