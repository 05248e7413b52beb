package shader

import (
	"go.uber.org/zap"

	"github.com/Faultbox/drawpass/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cache memoizes compiled programs by their source pair. Resolving the same
// pair twice returns the same program ID without recompiling. A failed
// compile or link is never cached, so a later Resolve with the same pair
// tries again.
//
// The cache grows with the number of distinct source pairs and holds its
// programs until Clear or the owning context goes away.
type Cache struct {
	programs map[Source]uint32

	// compile and release are swappable for tests.
	compile func(Source) (uint32, error)
	release func(uint32)
}

// NewCache returns an empty program cache.
func NewCache() *Cache {
	return &Cache{
		programs: make(map[Source]uint32),
		compile:  Compile,
		release:  func(p uint32) { gl.DeleteProgram(p) },
	}
}

// Resolve returns the compiled program for src, compiling and linking it on
// first use. On failure no entry is stored and the error carries the native
// compiler/linker log.
func (c *Cache) Resolve(src Source) (uint32, error) {
	if program, ok := c.programs[src]; ok {
		return program, nil
	}

	program, err := c.compile(src)
	if err != nil {
		return 0, err
	}

	c.programs[src] = program
	logger.Debug("compiled shader program",
		zap.Uint32("program", program),
		zap.Int("cached", len(c.programs)),
	)
	return program, nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	return len(c.programs)
}

// Clear deletes every cached program and empties the cache.
func (c *Cache) Clear() {
	for _, program := range c.programs {
		c.release(program)
	}
	c.programs = make(map[Source]uint32)
}
