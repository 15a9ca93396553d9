package glutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckers(t *testing.T) {
	rgba := Checkers(40, 30)
	assert.Equal(t, 40, rgba.Rect.Dx())
	assert.Equal(t, 30, rgba.Rect.Dy())

	at := func(i, j int) [4]uint8 {
		p := rgba.PixOffset(i, j)
		return [4]uint8{rgba.Pix[p], rgba.Pix[p+1], rgba.Pix[p+2], rgba.Pix[p+3]}
	}

	assert.Equal(t, [4]uint8{0, 0, 0, 0xFF}, at(0, 0))
	assert.Equal(t, [4]uint8{0xFF, 0, 0, 0xFF}, at(10, 10))
	assert.Equal(t, [4]uint8{0, 0xFF, 0, 0xFF}, at(13, 20))
	assert.Equal(t, [4]uint8{0xFF, 0xFF, 0xFF, 0xFF}, at(17, 17))
	assert.Equal(t, [4]uint8{0, 0, 0, 0xFF}, at(20, 10))
}

func TestFramebufferStatus(t *testing.T) {
	assert.Equal(t, "GL_FRAMEBUFFER_COMPLETE", FramebufferStatus(0x8CD5))
	assert.Equal(t, "0x1", FramebufferStatus(1))
}
