package core

// Mat4 is a row-major 4x4 matrix used for instance transforms
type Mat4 struct {
	M [4][4]float64
}

// IdentityMat4 returns the identity transform
func IdentityMat4() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// TranslateMat4 returns a pure translation transform
func TranslateMat4(t Vec3) Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, t.X},
		{0, 1, 0, t.Y},
		{0, 0, 1, t.Z},
		{0, 0, 0, 1},
	}}
}

// ScaleMat4 returns a pure scale transform
func ScaleMat4(s Vec3) Mat4 {
	return Mat4{M: [4][4]float64{
		{s.X, 0, 0, 0},
		{0, s.Y, 0, 0},
		{0, 0, s.Z, 0},
		{0, 0, 0, 1},
	}}
}

// TransformPoint applies the full affine transform to a position
func (a Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*p.X + a.M[0][1]*p.Y + a.M[0][2]*p.Z + a.M[0][3],
		Y: a.M[1][0]*p.X + a.M[1][1]*p.Y + a.M[1][2]*p.Z + a.M[1][3],
		Z: a.M[2][0]*p.X + a.M[2][1]*p.Y + a.M[2][2]*p.Z + a.M[2][3],
	}
}

// TransformDirection applies only the linear part of the transform.
// The result is not renormalized; callers normalize when a unit vector is needed.
func (a Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*d.X + a.M[0][1]*d.Y + a.M[0][2]*d.Z,
		Y: a.M[1][0]*d.X + a.M[1][1]*d.Y + a.M[1][2]*d.Z,
		Z: a.M[2][0]*d.X + a.M[2][1]*d.Y + a.M[2][2]*d.Z,
	}
}
