package shaders

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed particles.wgsl
var ParticlesWGSL string

// Entry points of ParticlesWGSL.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Validate compiles source through naga and reports the first front-end
// error. The pipeline builder runs it before handing WGSL to the device so a
// broken program fails with a readable message at startup.
func Validate(source string) error {
	spirv, err := naga.Compile(source)
	if err != nil {
		return fmt.Errorf("compile wgsl: %w", err)
	}
	if len(spirv) == 0 {
		return fmt.Errorf("compile wgsl: empty SPIR-V output")
	}
	return nil
}
