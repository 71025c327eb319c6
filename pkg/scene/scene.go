package scene

import (
	"github.com/df07/go-rt-shading/pkg/core"
	"github.com/df07/go-rt-shading/pkg/lights"
	"github.com/df07/go-rt-shading/pkg/material"
)

// Vertex is one entry of the flat vertex buffer: a position and shading
// normal in object space. Triangles occupy three consecutive entries.
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
}

// Instance describes one geometric instance: its object-to-world transform,
// where its vertices start in the shared buffer, and which material it uses
type Instance struct {
	Transform     core.Mat4
	VertexBase    int // Base offset into the vertex buffer
	MaterialIndex int // Index into the material buffer
}

// Scene is the read-only per-frame context every shading call receives.
// All buffers are immutable for the duration of a frame and safe to share
// across concurrent invocations.
type Scene struct {
	Vertices  []Vertex
	Instances []Instance
	Materials []material.Material
	Lights    []lights.Light
}

// Triangle returns the three vertices of a primitive within an instance,
// addressed as base + 3*primitive + {0,1,2}
func (s *Scene) Triangle(instance, primitive int) (Vertex, Vertex, Vertex) {
	base := s.Instances[instance].VertexBase + 3*primitive
	return s.Vertices[base], s.Vertices[base+1], s.Vertices[base+2]
}
