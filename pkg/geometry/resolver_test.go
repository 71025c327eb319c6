package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-rt-shading/pkg/core"
	"github.com/df07/go-rt-shading/pkg/scene"
)

// floorScene builds a single-instance scene with one triangle in the y=0
// plane, wound so the geometric normal points up, all vertex normals up
func floorScene(transform core.Mat4) *scene.Scene {
	up := core.NewVec3(0, 1, 0)
	return &scene.Scene{
		Vertices: []scene.Vertex{
			{Position: core.NewVec3(-1, 0, -1), Normal: up},
			{Position: core.NewVec3(0, 0, 1), Normal: up},
			{Position: core.NewVec3(1, 0, -1), Normal: up},
		},
		Instances: []scene.Instance{
			{Transform: transform, VertexBase: 0, MaterialIndex: 0},
		},
	}
}

func TestResolve_BarycentricCorners(t *testing.T) {
	s := floorScene(core.IdentityMat4())
	ray := core.NewVec3(0, -1, 0)

	tests := []struct {
		name string
		bary core.Vec2
		want core.Vec3
	}{
		{"first vertex", core.NewVec2(0, 0), core.NewVec3(-1, 0, -1)},
		{"second vertex", core.NewVec2(1, 0), core.NewVec3(0, 0, 1)},
		{"third vertex", core.NewVec2(0, 1), core.NewVec3(1, 0, -1)},
		{"edge midpoint", core.NewVec2(0.5, 0.5), core.NewVec3(0.5, 0, 0)},
	}
	for _, tt := range tests {
		ctx := HitContext{
			Barycentrics: tt.bary,
			RayOrigin:    core.NewVec3(0, 1, 0),
			RayDirection: ray,
		}
		surf := Resolve(ctx, s)
		if surf.Point.Subtract(tt.want).Length() > 1e-12 {
			t.Errorf("%s: got %v, expected %v", tt.name, surf.Point, tt.want)
		}
	}
}

func TestResolve_NormalsAndFrontFace(t *testing.T) {
	s := floorScene(core.IdentityMat4())
	ctx := HitContext{
		Barycentrics: core.NewVec2(0.3, 0.3),
		RayOrigin:    core.NewVec3(0, 1, 0),
		RayDirection: core.NewVec3(0, -1, 0),
	}

	surf := Resolve(ctx, s)
	if surf.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Shading normal: got %v, expected (0,1,0)", surf.Normal)
	}
	if surf.GeometricNormal.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Geometric normal: got %v, expected (0,1,0)", surf.GeometricNormal)
	}
	if !surf.FrontFace {
		t.Error("Ray from above should be a front-face hit")
	}
}

func TestResolve_BackFaceFlipsBothNormals(t *testing.T) {
	s := floorScene(core.IdentityMat4())
	ctx := HitContext{
		Barycentrics: core.NewVec2(0.3, 0.3),
		RayOrigin:    core.NewVec3(0, -1, 0),
		RayDirection: core.NewVec3(0, 1, 0), // Striking the underside
	}

	surf := Resolve(ctx, s)
	if surf.FrontFace {
		t.Error("Ray from below should be a back-face hit")
	}
	// Both normals face the ray origin side
	if surf.Normal.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-12 {
		t.Errorf("Flipped shading normal: got %v, expected (0,-1,0)", surf.Normal)
	}
	if surf.GeometricNormal.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-12 {
		t.Errorf("Flipped geometric normal: got %v, expected (0,-1,0)", surf.GeometricNormal)
	}
}

func TestResolve_InterpolatesShadingNormal(t *testing.T) {
	// Vertex normals tilt outward; the blend at the centroid stays up after
	// normalization
	s := &scene.Scene{
		Vertices: []scene.Vertex{
			{Position: core.NewVec3(-1, 0, -1), Normal: core.NewVec3(-1, 1, 0).Normalize()},
			{Position: core.NewVec3(0, 0, 1), Normal: core.NewVec3(1, 1, 0).Normalize()},
			{Position: core.NewVec3(1, 0, -1), Normal: core.NewVec3(0, 1, 1).Normalize()},
		},
		Instances: []scene.Instance{{Transform: core.IdentityMat4()}},
	}
	ctx := HitContext{
		Barycentrics: core.NewVec2(1.0/3.0, 1.0/3.0),
		RayOrigin:    core.NewVec3(0, 1, 0),
		RayDirection: core.NewVec3(0, -1, 0),
	}

	surf := Resolve(ctx, s)
	if math.Abs(surf.Normal.Length()-1.0) > 1e-12 {
		t.Errorf("Shading normal not renormalized: length %f", surf.Normal.Length())
	}
	want := core.NewVec3(-1, 1, 0).Normalize().
		Add(core.NewVec3(1, 1, 0).Normalize()).
		Add(core.NewVec3(0, 1, 1).Normalize()).Normalize()
	if surf.Normal.Subtract(want).Length() > 1e-12 {
		t.Errorf("Blended normal: got %v, expected %v", surf.Normal, want)
	}
}

func TestResolve_AppliesInstanceTransform(t *testing.T) {
	s := floorScene(core.TranslateMat4(core.NewVec3(10, 5, -2)))
	ctx := HitContext{
		Barycentrics: core.NewVec2(0, 0),
		RayOrigin:    core.NewVec3(10, 6, -3),
		RayDirection: core.NewVec3(0, -1, 0),
	}

	surf := Resolve(ctx, s)
	want := core.NewVec3(9, 5, -3) // First vertex translated
	if surf.Point.Subtract(want).Length() > 1e-12 {
		t.Errorf("Transformed point: got %v, expected %v", surf.Point, want)
	}
	// Translation leaves normals untouched
	if surf.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Normal after translation: got %v, expected (0,1,0)", surf.Normal)
	}
}

func TestResolve_RenormalizesScaledNormals(t *testing.T) {
	s := floorScene(core.ScaleMat4(core.NewVec3(3, 3, 3)))
	ctx := HitContext{
		Barycentrics: core.NewVec2(0.2, 0.2),
		RayOrigin:    core.NewVec3(0, 1, 0),
		RayDirection: core.NewVec3(0, -1, 0),
	}

	surf := Resolve(ctx, s)
	if math.Abs(surf.Normal.Length()-1.0) > 1e-12 {
		t.Errorf("Scaled shading normal not unit: %f", surf.Normal.Length())
	}
	if math.Abs(surf.GeometricNormal.Length()-1.0) > 1e-12 {
		t.Errorf("Scaled geometric normal not unit: %f", surf.GeometricNormal.Length())
	}
}

func TestResolve_VertexBaseOffset(t *testing.T) {
	up := core.NewVec3(0, 1, 0)
	s := &scene.Scene{
		Vertices: []scene.Vertex{
			// Padding from another instance
			{Position: core.NewVec3(99, 99, 99), Normal: up},
			{Position: core.NewVec3(99, 99, 99), Normal: up},
			{Position: core.NewVec3(99, 99, 99), Normal: up},
			{Position: core.NewVec3(-1, 0, -1), Normal: up},
			{Position: core.NewVec3(0, 0, 1), Normal: up},
			{Position: core.NewVec3(1, 0, -1), Normal: up},
		},
		Instances: []scene.Instance{{Transform: core.IdentityMat4(), VertexBase: 3}},
	}
	ctx := HitContext{
		Barycentrics: core.NewVec2(1, 0),
		RayOrigin:    core.NewVec3(0, 1, 0),
		RayDirection: core.NewVec3(0, -1, 0),
	}

	surf := Resolve(ctx, s)
	if surf.Point.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Offset addressing: got %v, expected (0,0,1)", surf.Point)
	}
}

func TestResolve_DegenerateTriangle(t *testing.T) {
	// All three vertices coincide: resolution must complete without NaN and
	// report a zero geometric normal
	p := core.NewVec3(1, 2, 3)
	up := core.NewVec3(0, 1, 0)
	s := &scene.Scene{
		Vertices: []scene.Vertex{
			{Position: p, Normal: up},
			{Position: p, Normal: up},
			{Position: p, Normal: up},
		},
		Instances: []scene.Instance{{Transform: core.IdentityMat4()}},
	}
	ctx := HitContext{
		Barycentrics: core.NewVec2(0.3, 0.3),
		RayOrigin:    core.NewVec3(0, 10, 0),
		RayDirection: core.NewVec3(0, -1, 0),
	}

	surf := Resolve(ctx, s)
	if surf.GeometricNormal != (core.Vec3{}) {
		t.Errorf("Degenerate geometric normal: got %v, expected zero", surf.GeometricNormal)
	}
	for _, v := range []core.Vec3{surf.Point, surf.Normal, surf.GeometricNormal} {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			t.Fatalf("Degenerate triangle produced NaN: %v", v)
		}
	}
	if surf.Point.Subtract(p).Length() > 1e-12 {
		t.Errorf("Degenerate point: got %v, expected %v", surf.Point, p)
	}
}
