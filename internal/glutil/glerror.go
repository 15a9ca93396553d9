package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var errorNames = map[uint32]string{
	0x500: "GL_INVALID_ENUM",
	0x501: "GL_INVALID_VALUE",
	0x502: "GL_INVALID_OPERATION",
	0x503: "GL_STACK_OVERFLOW",
	0x504: "GL_STACK_UNDERFLOW",
	0x505: "GL_OUT_OF_MEMORY",
	0x506: "GL_INVALID_FRAMEBUFFER_OPERATION",
	0x507: "GL_CONTEXT_LOST",
}

// Error is a code read from the GL error queue.
type Error uint32

func (err Error) Error() string {
	if name, ok := errorNames[uint32(err)]; ok {
		return name
	}
	return fmt.Sprintf("GL_ERROR 0x%X", uint32(err))
}

// CheckError returns the first pending GL error and clears the rest of
// the queue.
func CheckError() error {
	first := uint32(gl.NO_ERROR)
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == gl.NO_ERROR {
			first = code
		}
		// a lost context reports itself on every call
		if code == 0x507 {
			break
		}
	}
	if first == gl.NO_ERROR {
		return nil
	}
	return Error(first)
}
