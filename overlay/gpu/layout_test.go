package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/confetti"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexBufferLayout_Vertex(t *testing.T) {
	layout, err := VertexBufferLayout(confetti.Vertex{}, wgpu.VertexStepModeVertex)
	require.NoError(t, err)

	assert.Equal(t, uint64(8), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 1)
	assert.Equal(t, wgpu.VertexAttribute{
		Format:         wgpu.VertexFormatFloat32x2,
		Offset:         0,
		ShaderLocation: 0,
	}, layout.Attributes[0])
}

func TestVertexBufferLayout_Instance(t *testing.T) {
	layout, err := VertexBufferLayout(confetti.Instance{}, wgpu.VertexStepModeInstance)
	require.NoError(t, err)

	assert.Equal(t, uint64(20), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeInstance, layout.StepMode)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, uint32(1), layout.Attributes[0].ShaderLocation)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[0].Format)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint32(2), layout.Attributes[1].ShaderLocation)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format)
	assert.Equal(t, uint64(8), layout.Attributes[1].Offset)
}

func TestParticleBufferLayouts(t *testing.T) {
	layouts, err := ParticleBufferLayouts()
	require.NoError(t, err)
	require.Len(t, layouts, 2)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, wgpu.VertexStepModeInstance, layouts[1].StepMode)
}

func TestVertexBufferLayout_Errors(t *testing.T) {
	_, err := VertexBufferLayout(42, wgpu.VertexStepModeVertex)
	assert.Error(t, err)

	type untagged struct{ A [2]float32 }
	_, err = VertexBufferLayout(untagged{}, wgpu.VertexStepModeVertex)
	assert.Error(t, err)

	type badFormat struct {
		A [2]float32 `confetti:"layout" format:"half2" location:"0"`
	}
	_, err = VertexBufferLayout(badFormat{}, wgpu.VertexStepModeVertex)
	assert.ErrorContains(t, err, "half2")

	type badLocation struct {
		A [2]float32 `confetti:"layout" format:"float2" location:"x"`
	}
	_, err = VertexBufferLayout(badLocation{}, wgpu.VertexStepModeVertex)
	assert.ErrorContains(t, err, "location")
}

func TestVertexBufferLayout_UntaggedFieldsShiftOffsets(t *testing.T) {
	type padded struct {
		Skip  float32
		Value [3]float32 `confetti:"layout" format:"float3" location:"4"`
	}
	layout, err := VertexBufferLayout(padded{}, wgpu.VertexStepModeVertex)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), layout.ArrayStride)
	assert.Equal(t, uint64(4), layout.Attributes[0].Offset)
}

func TestPickers(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm,
		pickFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm}))
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm,
		pickFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm}))

	assert.Equal(t, wgpu.CompositeAlphaModePremultiplied,
		pickAlphaMode([]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModePremultiplied}))
	assert.Equal(t, wgpu.CompositeAlphaModeOpaque,
		pickAlphaMode([]wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque}))
}

func TestAlphaBlendingIsOver(t *testing.T) {
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, AlphaBlending.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, AlphaBlending.Color.DstFactor)
	assert.Equal(t, wgpu.BlendFactorOne, AlphaBlending.Alpha.SrcFactor)
}
