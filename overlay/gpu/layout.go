package gpu

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBufferLayout derives a vertex buffer layout from a struct whose
// attribute fields are tagged `confetti:"layout" format:"float2" location:"N"`.
// Untagged fields still count toward offsets and stride.
func VertexBufferLayout(vertexType any, stepMode wgpu.VertexStepMode) (wgpu.VertexBufferLayout, error) {
	t := reflect.TypeOf(vertexType)
	if t == nil || t.Kind() != reflect.Struct {
		return wgpu.VertexBufferLayout{}, fmt.Errorf("vertex layout: %v is not a struct", t)
	}

	var attributes []wgpu.VertexAttribute
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("confetti") != "layout" {
			continue
		}

		format, err := parseFormat(field.Tag.Get("format"))
		if err != nil {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("vertex layout %s.%s: %w", t.Name(), field.Name, err)
		}
		location, err := strconv.Atoi(field.Tag.Get("location"))
		if err != nil {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("vertex layout %s.%s: bad location: %w", t.Name(), field.Name, err)
		}

		attributes = append(attributes, wgpu.VertexAttribute{
			ShaderLocation: uint32(location),
			Offset:         uint64(field.Offset),
			Format:         format,
		})
	}
	if len(attributes) == 0 {
		return wgpu.VertexBufferLayout{}, fmt.Errorf("vertex layout: %s has no tagged fields", t.Name())
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(t.Size()),
		StepMode:    stepMode,
		Attributes:  attributes,
	}, nil
}

func parseFormat(name string) (wgpu.VertexFormat, error) {
	switch name {
	case "float":
		return wgpu.VertexFormatFloat32, nil
	case "float2":
		return wgpu.VertexFormatFloat32x2, nil
	case "float3":
		return wgpu.VertexFormatFloat32x3, nil
	case "float4":
		return wgpu.VertexFormatFloat32x4, nil
	default:
		return wgpu.VertexFormatUndefined, fmt.Errorf("unsupported vertex format %q", name)
	}
}
