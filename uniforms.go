package confetti

import (
	"fmt"
	"unsafe"
)

// Uniforms matches the Uniforms block of particles.wgsl. The padding keeps the
// block at 16 bytes, the uniform buffer binding granularity.
type Uniforms struct {
	Time float32
	_    [3]float32
}

// UniformsSize is the byte size of the uniform block.
const UniformsSize = uint64(unsafe.Sizeof(Uniforms{}))

// Bytes returns the raw block as laid out in GPU memory.
func (u *Uniforms) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(u)), UniformsSize)
}

// UniformWriter pushes raw bytes into the GPU-visible uniform buffer.
type UniformWriter interface {
	WriteUniforms(offset uint64, data []byte) error
}

// UniformState owns the CPU copy of the uniform block. It is the only writer
// of the uniform buffer.
type UniformState struct {
	uniforms Uniforms
	writer   UniformWriter
}

func NewUniformState(writer UniformWriter) *UniformState {
	return &UniformState{writer: writer}
}

// SetTime stores t and writes the whole block at offset 0.
func (s *UniformState) SetTime(t float32) error {
	s.uniforms.Time = t
	if err := s.writer.WriteUniforms(0, s.uniforms.Bytes()); err != nil {
		return fmt.Errorf("write uniforms: %w", err)
	}
	return nil
}

func (s *UniformState) Time() float32 { return s.uniforms.Time }
