package world

import (
	"math"

	"github.com/mokiat/gomath/dprec"
)

// Camera is a perspective camera with a vertical field of view.
type Camera struct {
	FoV    dprec.Angle
	Aspect float64
	Near   float64
	Far    float64

	Position dprec.Vec3
	Target   dprec.Vec3

	projection dprec.Mat4
}

func NewPerspectiveCamera(fov dprec.Angle, aspect, near, far float64) *Camera {
	c := &Camera{
		FoV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection matrix. It must be called after
// FoV, Aspect, Near or Far change.
func (c *Camera) UpdateProjection() {
	f := 1.0 / math.Tan(c.FoV.Radians()/2.0)
	depth := c.Near - c.Far
	c.projection = dprec.Mat4{
		M11: f / c.Aspect,
		M22: f,
		M33: (c.Far + c.Near) / depth,
		M34: 2.0 * c.Far * c.Near / depth,
		M43: -1.0,
	}
}

func (c *Camera) Projection() dprec.Mat4 {
	return c.projection
}

// Rotation returns the orientation that makes the camera, which looks down
// its local -Z axis, face Target.
func (c *Camera) Rotation() dprec.Quat {
	return lookRotation(c.Position, c.Target)
}

// Matrix returns the camera's world transform.
func (c *Camera) Matrix() dprec.Mat4 {
	return dprec.TRSMat4(c.Position, c.Rotation(), dprec.NewVec3(1.0, 1.0, 1.0))
}

// lookRotation builds a yaw-then-pitch rotation for an object at from that
// looks toward to along its local -Z axis.
func lookRotation(from, to dprec.Vec3) dprec.Quat {
	dir := dprec.Vec3Diff(to, from)
	horizontal := math.Hypot(dir.X, dir.Z)
	yaw := math.Atan2(-dir.X, -dir.Z)
	pitch := math.Atan2(dir.Y, horizontal)
	return dprec.QuatProd(
		dprec.RotationQuat(dprec.Radians(yaw), dprec.BasisYVec3()),
		dprec.RotationQuat(dprec.Radians(pitch), dprec.BasisXVec3()),
	)
}
