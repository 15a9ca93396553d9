package glutil

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// NewBuffer creates a buffer on target and fills it with size bytes from data.
func NewBuffer(target uint32, size int, data unsafe.Pointer, usage uint32) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(target, id)
	gl.BufferData(target, size, data, usage)
	return id
}

func NewVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

// Attrib enables a float attribute of the given component count reading
// from the currently bound ARRAY_BUFFER.
func Attrib(location uint32, components, stride int32, offset int) {
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointer(location, components, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

// AttribInstanced is like Attrib, but advances once per instance.
func AttribInstanced(location uint32, components, stride int32, offset int) {
	Attrib(location, components, stride, offset)
	gl.VertexAttribDivisor(location, 1)
}

// AttribLocation looks up a named attribute, -1 when it is not active.
func AttribLocation(program *Program, name string) int32 {
	return gl.GetAttribLocation(program.ID, gl.Str(cstring(name)))
}

func DeleteBuffers(ids ...uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(ids)), &ids[0])
}

func DeleteVertexArrays(ids ...uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteVertexArrays(int32(len(ids)), &ids[0])
}
