package geometry

import (
	"github.com/df07/go-rt-shading/pkg/core"
	"github.com/df07/go-rt-shading/pkg/material"
	"github.com/df07/go-rt-shading/pkg/scene"
)

// HitContext carries the invocation context the traversal layer supplies for
// one hit: which instance and primitive were struck, where on the triangle,
// and the ray that struck it
type HitContext struct {
	InstanceIndex  int
	PrimitiveIndex int
	Barycentrics   core.Vec2 // Weights of the second and third vertex
	RayOrigin      core.Vec3
	RayDirection   core.Vec3
}

// Resolve reconstructs the world-space hit from barycentric coordinates and
// the scene's vertex buffer: the interpolated position, the
// barycentric-blended shading normal, and the flat face normal from the
// triangle edges. Positions go through the full instance transform, normals
// through its linear part and are renormalized. If the ray exits through the
// front of the face, both normals are flipped so they always face the ray
// origin side.
//
// A degenerate (zero-area) triangle resolves with a zero geometric normal
// rather than NaN; downstream cosine terms then vanish.
func Resolve(ctx HitContext, s *scene.Scene) material.Surface {
	v0, v1, v2 := s.Triangle(ctx.InstanceIndex, ctx.PrimitiveIndex)
	transform := s.Instances[ctx.InstanceIndex].Transform

	u := ctx.Barycentrics.X
	v := ctx.Barycentrics.Y
	w := 1.0 - u - v

	position := v0.Position.Multiply(w).
		Add(v1.Position.Multiply(u)).
		Add(v2.Position.Multiply(v))
	shadingNormal := v0.Normal.Multiply(w).
		Add(v1.Normal.Multiply(u)).
		Add(v2.Normal.Multiply(v))

	edge1 := v1.Position.Subtract(v0.Position)
	edge2 := v2.Position.Subtract(v0.Position)
	geometricNormal := edge1.Cross(edge2)

	surf := material.Surface{
		Point:           transform.TransformPoint(position),
		Normal:          transform.TransformDirection(shadingNormal).Normalize(),
		GeometricNormal: transform.TransformDirection(geometricNormal).Normalize(),
		FrontFace:       true,
	}

	if ctx.RayDirection.Dot(surf.GeometricNormal) > 0 {
		surf.Normal = surf.Normal.Negate()
		surf.GeometricNormal = surf.GeometricNormal.Negate()
		surf.FrontFace = false
	}

	return surf
}
