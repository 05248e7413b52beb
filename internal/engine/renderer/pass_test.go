package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/drawpass/internal/engine/uniform"
	"github.com/Faultbox/drawpass/pkg/math"
)

func TestTopologyDefaultIsTriangles(t *testing.T) {
	var mode Topology
	if mode != Triangles {
		t.Error("zero Topology should be Triangles")
	}
	if mode.glMode() != gl.TRIANGLES {
		t.Errorf("zero Topology mode: got 0x%x, want GL_TRIANGLES", mode.glMode())
	}
}

func TestTopologyModes(t *testing.T) {
	cases := []struct {
		topology Topology
		mode     uint32
		name     string
	}{
		{Points, gl.POINTS, "points"},
		{Lines, gl.LINES, "lines"},
		{LineLoop, gl.LINE_LOOP, "line-loop"},
		{LineStrip, gl.LINE_STRIP, "line-strip"},
		{Triangles, gl.TRIANGLES, "triangles"},
		{TriangleStrip, gl.TRIANGLE_STRIP, "triangle-strip"},
		{TriangleFan, gl.TRIANGLE_FAN, "triangle-fan"},
	}

	for _, tc := range cases {
		if got := tc.topology.glMode(); got != tc.mode {
			t.Errorf("%s: got mode 0x%x, want 0x%x", tc.name, got, tc.mode)
		}
		if got := tc.topology.String(); got != tc.name {
			t.Errorf("String: got %q, want %q", got, tc.name)
		}
	}
}

func TestMergeUniformsBuiltinsPresent(t *testing.T) {
	builtins := map[string]uniform.Value{
		TimeUniform:       uniform.Scalar(1.5),
		ResolutionUniform: uniform.Vec2(math.Vec2{X: 800, Y: 600}),
	}

	merged := mergeUniforms(builtins, nil)

	if merged[TimeUniform].Kind() != uniform.KindScalar {
		t.Error("time built-in missing when caller supplies no uniforms")
	}
	if merged[ResolutionUniform].Kind() != uniform.KindVec2 {
		t.Error("resolution built-in missing when caller supplies no uniforms")
	}
}

func TestMergeUniformsCallerWins(t *testing.T) {
	builtins := map[string]uniform.Value{
		TimeUniform:       uniform.Scalar(99),
		ResolutionUniform: uniform.Vec2(math.Vec2{X: 800, Y: 600}),
	}
	overrides := map[string]uniform.Value{
		TimeUniform: uniform.Scalar(0),
		"u_color":   uniform.Vec3(math.Vec3{X: 1, Y: 0, Z: 0}),
	}

	merged := mergeUniforms(builtins, overrides)

	if got := merged[TimeUniform].Floats()[0]; got != 0 {
		t.Errorf("caller time should win: got %f, want 0", got)
	}
	if merged[ResolutionUniform].Kind() != uniform.KindVec2 {
		t.Error("untouched built-in should survive the merge")
	}
	if merged["u_color"].Kind() != uniform.KindVec3 {
		t.Error("caller-only uniform missing from merge")
	}
	if len(merged) != 3 {
		t.Errorf("merged set size: got %d, want 3", len(merged))
	}
}

func TestMergeUniformsDoesNotMutateInputs(t *testing.T) {
	builtins := map[string]uniform.Value{TimeUniform: uniform.Scalar(1)}
	overrides := map[string]uniform.Value{TimeUniform: uniform.Scalar(2)}

	mergeUniforms(builtins, overrides)

	if builtins[TimeUniform].Floats()[0] != 1 {
		t.Error("merge mutated the builtins map")
	}
}
