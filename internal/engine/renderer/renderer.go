// Package renderer executes declarative draw passes against one OpenGL
// context.
//
// State contract: a pass fully specifies every binding it needs, and nothing
// is unbound or restored after the draw. No GL state is guaranteed preserved
// or cleared between Execute calls.
package renderer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/drawpass/internal/engine/framebuffer"
	"github.com/Faultbox/drawpass/internal/engine/resource"
	"github.com/Faultbox/drawpass/internal/engine/shader"
	"github.com/Faultbox/drawpass/internal/engine/uniform"
	"github.com/Faultbox/drawpass/internal/logger"
	"github.com/Faultbox/drawpass/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the program cache and executes draw passes. It is
// single-threaded and bound to the OpenGL context current at New.
type Renderer struct {
	config   Config
	programs *shader.Cache
	start    time.Time

	// Core profile requires a bound VAO for vertex attribute state; one
	// shared VAO serves every pass.
	vao uint32

	// Fullscreen quad for Display, created on first use.
	quad      resource.Buffer
	quadReady bool
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		programs: shader.NewCache(),
		start:    time.Now(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	return r, nil
}

// Close releases the renderer's own resources. Buffers and textures created
// through the factory methods stay with the context.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.programs.Clear()
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

// Resize records the new default surface size, used for the resolution
// built-in and the default surface viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear clears the current render target with the given color.
func (r *Renderer) Clear(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Elapsed returns seconds since the renderer was created, the value fed to
// the time built-in.
func (r *Renderer) Elapsed() float32 {
	return float32(time.Since(r.start).Seconds())
}

// CreateBuffer uploads vertex data into a new static buffer.
func (r *Renderer) CreateBuffer(data []float32) resource.Buffer {
	return resource.CreateBuffer(data)
}

// CreateTexture allocates an RGBA8 texture; nil pixels leaves it
// uninitialized.
func (r *Renderer) CreateTexture(width, height int32, pixels []uint8) resource.Texture {
	return resource.CreateTexture(width, height, pixels)
}

// CreateFloatTexture allocates an RGBA32F texture; nil pixels leaves it
// uninitialized.
func (r *Renderer) CreateFloatTexture(width, height int32, pixels []float32) resource.Texture {
	return resource.CreateFloatTexture(width, height, pixels)
}

// NewTarget wraps a texture in an offscreen render target.
func (r *Renderer) NewTarget(tex resource.Texture) (*framebuffer.Target, error) {
	return framebuffer.ForTexture(tex)
}

// Execute realizes one draw pass: resolve the program, bind attributes and
// textures, upload the merged uniform set, select the output target and
// submit the draw. Returns an error only for program compile/link failure.
func (r *Renderer) Execute(p *Pass) error {
	program, err := r.programs.Resolve(p.Shader)
	if err != nil {
		return fmt.Errorf("resolving program: %w", err)
	}
	gl.UseProgram(program)

	for name, attr := range p.Attributes {
		loc := shader.AttribLocation(program, name)
		if loc < 0 {
			// Shader does not use this attribute.
			continue
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, attr.Buffer.ID())
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), attr.Components, gl.FLOAT, false, 0, 0)
	}

	for i, tb := range p.Textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tb.Texture.ID())
		if loc := shader.UniformLocation(program, tb.Name); loc >= 0 {
			gl.Uniform1i(loc, int32(i))
		}
	}

	builtins := map[string]uniform.Value{
		TimeUniform:       uniform.Scalar(r.Elapsed()),
		ResolutionUniform: uniform.Vec2(math.Vec2{X: float32(r.config.Width), Y: float32(r.config.Height)}),
	}
	for name, val := range mergeUniforms(builtins, p.Uniforms) {
		if err := uniform.Apply(program, name, val); err != nil {
			logger.Warn("skipping uniform", zap.String("name", name), zap.Error(err))
		}
	}

	if p.Output != nil {
		p.Output.Bind()
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	}

	gl.DrawArrays(p.Mode.glMode(), 0, p.Count)
	return nil
}

// ReadData synchronously reads a texture back as RGBA float32 values. This
// blocks until all queued GPU work finishes; do not call it per frame.
func (r *Renderer) ReadData(tex resource.Texture, width, height int32) ([]float32, error) {
	return framebuffer.ReadFloats(tex, width, height)
}

const displayVertexSrc = `#version 410 core
in vec2 position;
out vec2 v_uv;
void main() {
	v_uv = position * 0.5 + 0.5;
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const displayFragmentSrc = `#version 410 core
uniform sampler2D u_texture;
in vec2 v_uv;
out vec4 fragColor;
void main() {
	fragColor = texture(u_texture, v_uv);
}
`

// Display draws tex as a fullscreen quad on the default surface. Debug
// visualization shortcut; the internal program and quad buffer are created
// on first use and then reused.
func (r *Renderer) Display(tex resource.Texture) error {
	if !r.quadReady {
		r.quad = resource.CreateBuffer([]float32{
			-1, -1,
			1, -1,
			-1, 1,
			1, 1,
		})
		r.quadReady = true
	}

	return r.Execute(&Pass{
		Shader: shader.Source{Vertex: displayVertexSrc, Fragment: displayFragmentSrc},
		Attributes: map[string]Attribute{
			"position": {Buffer: r.quad, Components: 2},
		},
		Textures: []TextureBinding{
			{Name: "u_texture", Texture: tex},
		},
		Count: 4,
		Mode:  TriangleStrip,
	})
}
