// Package framebuffer provides offscreen render targets backed by caller
// textures, and synchronous readback of texture contents.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/drawpass/internal/engine/resource"
)

// Target is an offscreen render destination whose color attachment is a
// caller-supplied texture. The target does not size any viewport; callers
// wanting the full texture rendered set the viewport themselves.
type Target struct {
	fbo    uint32
	width  int32
	height int32
}

// ForTexture wraps tex in a new framebuffer target. Returns an error if the
// resulting framebuffer is incomplete.
func ForTexture(tex resource.Texture) (*Target, error) {
	w, h := tex.Size()
	t := &Target{width: w, height: h}

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex.ID(), 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	return t, nil
}

// Bind makes this target the current render destination.
func (t *Target) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
}

// Unbind restores the default surface as the render destination.
func (t *Target) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Size returns the dimensions of the color attachment.
func (t *Target) Size() (width, height int32) {
	return t.width, t.height
}

// Destroy releases the framebuffer object. The attached texture belongs to
// the caller and is left alone.
func (t *Target) Destroy() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
}

// ReadFloats synchronously reads width*height pixels of tex back as RGBA
// float32 values via a temporary framebuffer. This drains all pending GPU
// work before returning and is far too slow for per-frame use; it exists
// for verification and data extraction.
func ReadFloats(tex resource.Texture, width, height int32) ([]float32, error) {
	target, err := ForTexture(tex)
	if err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}
	defer target.Destroy()

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	target.Bind()

	// Hard sync point: everything queued against the context finishes here.
	gl.Finish()

	pixels := make([]float32, width*height*4)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.FLOAT, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	return pixels, nil
}
