package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/glexamples/internal/glutil"
)

// Attribute describes one float attribute of the interleaved layout.
type Attribute struct {
	Location   uint32
	Components int32
}

// Mesh is Data uploaded to the GPU.
type Mesh struct {
	VAO uint32
	VBO uint32
	IBO uint32

	VertexCount int32
	IndexCount  int32
}

// Upload creates a vertex array for data. The attributes are laid out in
// order and must add up to data.Stride floats. The vertex array is left bound.
func Upload(data Data, attributes ...Attribute) *Mesh {
	mesh := &Mesh{
		VertexCount: int32(data.VertexCount()),
		IndexCount:  int32(len(data.Indices)),
	}

	mesh.VAO = glutil.NewVertexArray()
	mesh.VBO = glutil.NewBuffer(gl.ARRAY_BUFFER, 4*len(data.Vertices), gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	stride := int32(4 * data.Stride)
	offset := 0
	for _, attr := range attributes {
		glutil.Attrib(attr.Location, attr.Components, stride, offset)
		offset += 4 * int(attr.Components)
	}

	if len(data.Indices) > 0 {
		mesh.IBO = glutil.NewBuffer(gl.ELEMENT_ARRAY_BUFFER, 4*len(data.Indices), gl.Ptr(data.Indices), gl.STATIC_DRAW)
	}

	return mesh
}

func (mesh *Mesh) Bind() { gl.BindVertexArray(mesh.VAO) }

// Draw draws the mesh as triangles.
func (mesh *Mesh) Draw() {
	gl.BindVertexArray(mesh.VAO)
	if mesh.IBO != 0 {
		gl.DrawElements(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, mesh.VertexCount)
	}
}

func (mesh *Mesh) DrawInstanced(instances int32) {
	gl.BindVertexArray(mesh.VAO)
	gl.DrawElementsInstanced(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0), instances)
}

func (mesh *Mesh) Delete() {
	glutil.DeleteVertexArrays(mesh.VAO)
	if mesh.IBO != 0 {
		glutil.DeleteBuffers(mesh.VBO, mesh.IBO)
	} else {
		glutil.DeleteBuffers(mesh.VBO)
	}
}
