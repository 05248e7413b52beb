package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/drawpass/internal/engine/framebuffer"
	"github.com/Faultbox/drawpass/internal/engine/resource"
	"github.com/Faultbox/drawpass/internal/engine/shader"
	"github.com/Faultbox/drawpass/internal/engine/uniform"
)

// Built-in uniform names. Both are supplied to every pass unless the pass
// uniform map carries the same name, in which case the caller's value wins.
const (
	// TimeUniform is a float holding seconds since renderer creation.
	TimeUniform = "u_time"
	// ResolutionUniform is a vec2 holding the default surface size in pixels.
	ResolutionUniform = "u_resolution"
)

// Topology is the rule for grouping a vertex sequence into drawable shapes.
// The zero value draws triangles.
type Topology int

const (
	Triangles Topology = iota
	Points
	Lines
	LineLoop
	LineStrip
	TriangleStrip
	TriangleFan
)

// glMode returns the OpenGL draw mode for the topology.
func (t Topology) glMode() uint32 {
	switch t {
	case Points:
		return gl.POINTS
	case Lines:
		return gl.LINES
	case LineLoop:
		return gl.LINE_LOOP
	case LineStrip:
		return gl.LINE_STRIP
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineLoop:
		return "line-loop"
	case LineStrip:
		return "line-strip"
	case TriangleStrip:
		return "triangle-strip"
	case TriangleFan:
		return "triangle-fan"
	default:
		return "triangles"
	}
}

// Attribute binds a buffer to a named per-vertex shader input. Attribute
// data is always tightly packed 32-bit floats at offset zero; Components is
// the number of floats per vertex (1 to 4).
type Attribute struct {
	Buffer     resource.Buffer
	Components int32
}

// TextureBinding associates a sampler uniform name with a texture. Bindings
// are ordered: the binding at index i is assigned texture unit i.
type TextureBinding struct {
	Name    string
	Texture resource.Texture
}

// Pass is a declarative description of one draw call.
type Pass struct {
	// Shader is the vertex/fragment source pair. Programs are compiled on
	// first use and cached for the renderer's lifetime.
	Shader shader.Source

	// Attributes maps shader input names to buffer bindings. Names the
	// shader does not declare are skipped.
	Attributes map[string]Attribute

	// Uniforms maps uniform names to values. Entries named like a built-in
	// uniform replace it for this pass.
	Uniforms map[string]uniform.Value

	// Textures is the ordered list of sampler bindings; index is the
	// texture unit.
	Textures []TextureBinding

	// Count is the number of vertices to draw, starting at vertex 0.
	Count int32

	// Mode is the primitive topology. Zero value draws triangles.
	Mode Topology

	// Output is the render destination. Nil targets the default surface.
	// The viewport is not adjusted either way; callers size offscreen
	// targets themselves.
	Output *framebuffer.Target
}

// mergeUniforms overlays the caller's uniforms on the built-in set. Caller
// entries win on name collision.
func mergeUniforms(builtins, overrides map[string]uniform.Value) map[string]uniform.Value {
	merged := make(map[string]uniform.Value, len(builtins)+len(overrides))
	for name, v := range builtins {
		merged[name] = v
	}
	for name, v := range overrides {
		merged[name] = v
	}
	return merged
}
