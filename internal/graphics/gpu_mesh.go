package graphics

import (
	"workshop/internal/mesh"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GPUMesh is an indexed triangle buffer with interleaved position and normal.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	vertexFloats  int
}

// NewGPUMesh uploads vertices (6 floats each) and indices. dynamic selects a buffer
// usage suited to frequent UpdateVertices calls.
func NewGPUMesh(vertices []float32, indices []uint32, dynamic bool) *GPUMesh {
	m := &GPUMesh{}
	usage := uint32(gl.STATIC_DRAW)
	if dynamic {
		usage = gl.DYNAMIC_DRAW
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), usage)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	m.indexCount = int32(len(indices))
	m.vertexFloats = len(vertices)
	return m
}

// UploadMesh uploads the current state of m.
func UploadMesh(m *mesh.Mesh, dynamic bool) *GPUMesh {
	snap := m.Snapshot()
	return NewGPUMesh(snap.Interleave(), snap.Indices, dynamic)
}

// UpdateVertices replaces the vertex data. The vertex count must not change.
func (m *GPUMesh) UpdateVertices(vertices []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) != m.vertexFloats {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		m.vertexFloats = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (m *GPUMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (m *GPUMesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
