package glutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorNames(t *testing.T) {
	assert.Equal(t, "GL_INVALID_ENUM", Error(0x500).Error())
	assert.Equal(t, "GL_INVALID_OPERATION", Error(0x502).Error())
	assert.Equal(t, "GL_INVALID_FRAMEBUFFER_OPERATION", Error(0x506).Error())
	assert.Equal(t, "GL_CONTEXT_LOST", Error(0x507).Error())
	assert.Equal(t, "GL_ERROR 0x1234", Error(0x1234).Error())
}

func TestStageName(t *testing.T) {
	assert.Equal(t, "vertex shader", StageName(Vertex("").Type))
	assert.Equal(t, "compute shader", StageName(Compute("").Type))
	assert.Equal(t, "shader 0x1", StageName(1))
}

func TestCString(t *testing.T) {
	assert.Equal(t, "abc\x00", cstring("abc"))
	assert.Equal(t, "abc\x00", cstring("abc\x00"))
}
