// Package uniform provides typed shader uniform values and their upload to
// OpenGL programs.
//
// A Value is a tagged variant over the supported shapes (scalar, vec2/3/4,
// mat3/mat4 column-major). The tag is fixed at construction, so a 9-element
// vector can never be confused with a 3x3 matrix.
package uniform

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/drawpass/internal/engine/shader"
	"github.com/Faultbox/drawpass/pkg/math"
)

// Kind discriminates the shape of a Value. The zero Kind is invalid, so a
// zero Value is never uploaded.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindScalar
	KindVec2
	KindVec3
	KindVec4
	KindMat3
	KindMat4
)

// String returns the GLSL-ish name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindMat3:
		return "mat3"
	case KindMat4:
		return "mat4"
	default:
		return "invalid"
	}
}

// count returns the number of floats the kind occupies.
func (k Kind) count() int {
	switch k {
	case KindScalar:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	case KindMat3:
		return 9
	case KindMat4:
		return 16
	default:
		return 0
	}
}

// Value is one uniform value of any supported shape.
type Value struct {
	kind Kind
	data [16]float32
}

// Scalar returns a single-float Value.
func Scalar(v float32) Value {
	return Value{kind: KindScalar, data: [16]float32{v}}
}

// Vec2 returns a 2-vector Value.
func Vec2(v math.Vec2) Value {
	return Value{kind: KindVec2, data: [16]float32{v.X, v.Y}}
}

// Vec3 returns a 3-vector Value.
func Vec3(v math.Vec3) Value {
	return Value{kind: KindVec3, data: [16]float32{v.X, v.Y, v.Z}}
}

// Vec4 returns a 4-vector Value.
func Vec4(v math.Vec4) Value {
	return Value{kind: KindVec4, data: [16]float32{v.X, v.Y, v.Z, v.W}}
}

// Mat3 returns a 3x3 column-major matrix Value.
func Mat3(m math.Mat3) Value {
	v := Value{kind: KindMat3}
	copy(v.data[:9], m[:])
	return v
}

// Mat4 returns a 4x4 column-major matrix Value.
func Mat4(m math.Mat4) Value {
	v := Value{kind: KindMat4}
	copy(v.data[:], m[:])
	return v
}

// FromFloats builds a Value from a raw float slice, dispatching on length:
// 1 scalar, 2/3/4 vector, 9 mat3, 16 mat4 (matrices column-major). Any other
// length is an error; callers treat it as a non-fatal skip.
func FromFloats(vals []float32) (Value, error) {
	var kind Kind
	switch len(vals) {
	case 1:
		kind = KindScalar
	case 2:
		kind = KindVec2
	case 3:
		kind = KindVec3
	case 4:
		kind = KindVec4
	case 9:
		kind = KindMat3
	case 16:
		kind = KindMat4
	default:
		return Value{}, fmt.Errorf("unsupported uniform length %d (want 1, 2, 3, 4, 9 or 16)", len(vals))
	}

	v := Value{kind: kind}
	copy(v.data[:], vals)
	return v, nil
}

// Kind returns the shape tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Floats returns the value's payload as a slice sized to its kind.
func (v Value) Floats() []float32 {
	return v.data[:v.kind.count()]
}

// Apply uploads the value to the named uniform of program. A name the
// program does not declare (or that the compiler optimized out) is silently
// skipped. A zero Value is skipped with an error so the caller can warn.
func Apply(program uint32, name string, v Value) error {
	if v.kind == KindInvalid {
		return fmt.Errorf("uniform %q has no value", name)
	}

	loc := shader.UniformLocation(program, name)
	if loc < 0 {
		return nil
	}

	switch v.kind {
	case KindScalar:
		gl.Uniform1f(loc, v.data[0])
	case KindVec2:
		gl.Uniform2f(loc, v.data[0], v.data[1])
	case KindVec3:
		gl.Uniform3f(loc, v.data[0], v.data[1], v.data[2])
	case KindVec4:
		gl.Uniform4f(loc, v.data[0], v.data[1], v.data[2], v.data[3])
	case KindMat3:
		gl.UniformMatrix3fv(loc, 1, false, &v.data[0])
	case KindMat4:
		gl.UniformMatrix4fv(loc, 1, false, &v.data[0])
	}
	return nil
}
