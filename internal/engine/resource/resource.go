// Package resource allocates the GPU-side buffers and textures consumed by
// draw passes. Handles are created once and reused across many passes.
package resource

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/drawpass/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Buffer is an opaque handle to a GPU-resident vertex buffer.
type Buffer struct {
	id uint32
}

// ID returns the underlying OpenGL buffer object name.
func (b Buffer) ID() uint32 {
	return b.id
}

// Texture is an opaque handle to a GPU-resident 2D texture.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// ID returns the underlying OpenGL texture object name.
func (t Texture) ID() uint32 {
	return t.id
}

// Size returns the texture dimensions.
func (t Texture) Size() (width, height int32) {
	return t.width, t.height
}

// CreateBuffer uploads vertex data into a new static buffer. The data is
// not expected to change after upload.
func CreateBuffer(data []float32) Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	logger.Debug("created buffer",
		zap.Uint32("buffer", id),
		zap.Int("floats", len(data)),
	)
	return Buffer{id: id}
}

// CreateTexture allocates an RGBA8 texture. pixels holds width*height*4
// bytes, or nil for an uninitialized texture suitable as a render target.
func CreateTexture(width, height int32, pixels []uint8) Texture {
	var ptr interface{}
	if pixels != nil {
		ptr = pixels
	}
	return newTexture(width, height, gl.RGBA8, gl.UNSIGNED_BYTE, ptr)
}

// CreateFloatTexture allocates an RGBA32F texture. pixels holds
// width*height*4 floats, or nil for an uninitialized texture suitable as a
// float render target.
func CreateFloatTexture(width, height int32, pixels []float32) Texture {
	var ptr interface{}
	if pixels != nil {
		ptr = pixels
	}
	return newTexture(width, height, gl.RGBA32F, gl.FLOAT, ptr)
}

// newTexture allocates a texture with the fixed data-texture sampling
// parameters: clamp-to-edge wrapping and nearest filtering, so shaders read
// texels back exactly rather than smoothed.
func newTexture(width, height, internalFormat int32, pixelType uint32, pixels interface{}) Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	var data unsafe.Pointer
	if pixels != nil {
		data = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, gl.RGBA, pixelType, data)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	logger.Debug("created texture",
		zap.Uint32("texture", id),
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Bool("float", pixelType == gl.FLOAT),
	)
	return Texture{id: id, width: width, height: height}
}
