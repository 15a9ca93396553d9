package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen target with an RGBA8 color texture and a
// 24 bit depth renderbuffer.
type Framebuffer struct {
	ID     uint32
	Color  uint32
	Depth  uint32
	Width  int32
	Height int32
}

func NewFramebuffer(width, height int32) (*Framebuffer, error) {
	fb := &Framebuffer{}
	gl.GenFramebuffers(1, &fb.ID)
	gl.GenTextures(1, &fb.Color)
	gl.GenRenderbuffers(1, &fb.Depth)

	gl.BindTexture(gl.TEXTURE_2D, fb.Color)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	if err := fb.Resize(width, height); err != nil {
		fb.Delete()
		return nil, err
	}
	return fb, nil
}

// Resize reallocates both attachments and verifies completeness.
func (fb *Framebuffer) Resize(width, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	fb.Width, fb.Height = width, height

	gl.BindTexture(gl.TEXTURE_2D, fb.Color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.Depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.Color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.Depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete: %v", FramebufferStatus(status))
	}
	return nil
}

func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	gl.Viewport(0, 0, fb.Width, fb.Height)
}

func (fb *Framebuffer) Delete() {
	gl.DeleteFramebuffers(1, &fb.ID)
	gl.DeleteTextures(1, &fb.Color)
	gl.DeleteRenderbuffers(1, &fb.Depth)
}

// FramebufferStatus names a framebuffer completeness status.
func FramebufferStatus(status uint32) string {
	switch status {
	case 0x8CD5:
		return "GL_FRAMEBUFFER_COMPLETE"
	case 0x8219:
		return "GL_FRAMEBUFFER_UNDEFINED"
	case 0x8CD6:
		return "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case 0x8CD7:
		return "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case 0x8CDB:
		return "GL_FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER"
	case 0x8CDC:
		return "GL_FRAMEBUFFER_INCOMPLETE_READ_BUFFER"
	case 0x8CDD:
		return "GL_FRAMEBUFFER_UNSUPPORTED"
	case 0x8D56:
		return "GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE"
	case 0x8DA8:
		return "GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS"
	}
	return fmt.Sprintf("0x%X", status)
}
