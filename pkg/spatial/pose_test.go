package spatial

import (
	"math"
	"testing"
)

const tol = 1e-5

func vecNear(t *testing.T, got, want Vec3) {
	t.Helper()
	if math.Abs(float64(got.X-want.X)) > tol ||
		math.Abs(float64(got.Y-want.Y)) > tol ||
		math.Abs(float64(got.Z-want.Z)) > tol {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRotZQuarterTurn(t *testing.T) {
	p := RotZ(math.Pi / 2)
	vecNear(t, p.Apply(Vec3{X: 1}), Vec3{Y: 1})
}

func TestRotXThenRotY(t *testing.T) {
	p := RotY(math.Pi / 2).Mul(RotX(math.Pi / 2))
	// RotX maps +y to +z, RotY then maps +z to +x.
	vecNear(t, p.Apply(Vec3{Y: 1}), Vec3{X: 1})
}

func TestPoseInverseRoundTrip(t *testing.T) {
	p := PoseFromParts(Vec3{X: 1, Y: -2, Z: 0.5}, QuatFromScaledAxis(Vec3{X: 0.3, Y: 1.1, Z: -0.7}))
	v := Vec3{X: 0.2, Y: 3, Z: -1}
	vecNear(t, p.Inverse().Apply(p.Apply(v)), v)
}

func TestPoseMulMatchesMatrixMul(t *testing.T) {
	a := PoseFromParts(Vec3{X: 1}, QuatFromScaledAxis(Vec3{Z: 0.4}))
	b := PoseFromParts(Vec3{Y: 2}, QuatFromScaledAxis(Vec3{X: -0.9}))
	v := Vec3{X: 0.5, Y: 0.25, Z: -2}

	want := a.Apply(b.Apply(v))
	m := a.Matrix().Mul(b.Matrix())
	got := Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
	vecNear(t, got, want)
}

func TestIdentityPose(t *testing.T) {
	v := Vec3{X: 4, Y: 5, Z: 6}
	vecNear(t, IdentityPose().Apply(v), v)
}

func TestTranslate(t *testing.T) {
	vecNear(t, Translate(Vec3{X: 1, Y: 2, Z: 3}).Apply(Vec3{X: 1}), Vec3{X: 2, Y: 2, Z: 3})
}
