package core

import "unsafe"

// Vertex is a render-ready vertex: a clip-space position (z is always 0
// for 2D geometry) and a flat RGB color.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32 // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int32 // bytes
	Attributes []VertexAttrib
}

// ColorVertexLayout describes Vertex: pos3 + color3.
var ColorVertexLayout = VertexLayout{
	Stride: int32(unsafe.Sizeof(Vertex{})),
	Attributes: []VertexAttrib{
		{Location: 0, Size: 3, Type: AttribFloat32, Offset: int(unsafe.Offsetof(Vertex{}.Position))}, // pos
		{Location: 1, Size: 3, Type: AttribFloat32, Offset: int(unsafe.Offsetof(Vertex{}.Color))},    // color
	},
}
