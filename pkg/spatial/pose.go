package spatial

// Pose is a rigid transform (rotation followed by translation). It places
// an entity or camera within a scene reference frame.
type Pose struct {
	Rotation    Quat `json:"rotation"`
	Translation Vec3 `json:"translation"`
}

// IdentityPose returns the identity transform.
func IdentityPose() Pose {
	return Pose{Rotation: IdentityQuat()}
}

// PoseFromParts constructs a pose from a translation and a rotation.
func PoseFromParts(translation Vec3, rotation Quat) Pose {
	return Pose{Rotation: rotation, Translation: translation}
}

// RotX returns the pure rotation about the x-axis by angle radians, with
// zero translation.
func RotX(angle float32) Pose {
	return Pose{Rotation: QuatFromScaledAxis(Vec3{X: angle})}
}

// RotY returns the pure rotation about the y-axis by angle radians, with
// zero translation.
func RotY(angle float32) Pose {
	return Pose{Rotation: QuatFromScaledAxis(Vec3{Y: angle})}
}

// RotZ returns the pure rotation about the z-axis by angle radians, with
// zero translation.
func RotZ(angle float32) Pose {
	return Pose{Rotation: QuatFromScaledAxis(Vec3{Z: angle})}
}

// Translate returns the pure translation by t.
func Translate(t Vec3) Pose {
	return Pose{Rotation: IdentityQuat(), Translation: t}
}

// Mul returns the composed transform p * o (o applied first).
func (p Pose) Mul(o Pose) Pose {
	return Pose{
		Rotation:    p.Rotation.Mul(o.Rotation).Normalized(),
		Translation: p.Rotation.Rotate(o.Translation).Add(p.Translation),
	}
}

// Apply transforms the point v by p.
func (p Pose) Apply(v Vec3) Vec3 {
	return p.Rotation.Rotate(v).Add(p.Translation)
}

// Inverse returns the inverse transform.
func (p Pose) Inverse() Pose {
	inv := p.Rotation.Inverse()
	return Pose{
		Rotation:    inv,
		Translation: inv.Rotate(p.Translation).Scale(-1),
	}
}

// Matrix returns the pose as a column-major 4x4 homogeneous matrix,
// suitable for upload as a model or view matrix.
func (p Pose) Matrix() Mat4 {
	q := p.Rotation
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		p.Translation.X, p.Translation.Y, p.Translation.Z, 1,
	}
}
