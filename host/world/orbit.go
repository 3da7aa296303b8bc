package world

import (
	"math"

	"github.com/mokiat/gomath/dprec"
)

const (
	DefaultDampingFactor = 0.05

	// Keeps the camera off the poles where the azimuth is undefined.
	polarEpsilon = 1e-6
	// Pending motion below this is dropped.
	settleEpsilon = 1e-9
)

// OrbitControls moves a camera on a sphere around a target. Input is
// accumulated as pending motion that Update applies gradually when damping
// is enabled.
type OrbitControls struct {
	camera *Camera

	EnableDamping bool
	DampingFactor float64
	MinDistance   float64
	MaxDistance   float64

	deltaAzimuth float64
	deltaPolar   float64
	scale        float64
	pan          dprec.Vec3
}

func NewOrbitControls(camera *Camera) *OrbitControls {
	return &OrbitControls{
		camera:        camera,
		DampingFactor: DefaultDampingFactor,
		MinDistance:   0.0,
		MaxDistance:   math.Inf(1),
		scale:         1.0,
	}
}

func (c *OrbitControls) Camera() *Camera {
	return c.camera
}

// Rotate queues a rotation around the target, in radians.
func (c *OrbitControls) Rotate(deltaAzimuth, deltaPolar float64) {
	c.deltaAzimuth += deltaAzimuth
	c.deltaPolar += deltaPolar
}

// Zoom queues a distance multiplier. Values below one move closer.
func (c *OrbitControls) Zoom(scale float64) {
	if scale > 0 {
		c.scale *= scale
	}
}

// Pan queues a translation of both target and camera.
func (c *OrbitControls) Pan(offset dprec.Vec3) {
	c.pan = dprec.Vec3Sum(c.pan, offset)
}

// Settled reports whether no motion is pending.
func (c *OrbitControls) Settled() bool {
	return math.Abs(c.deltaAzimuth) < settleEpsilon &&
		math.Abs(c.deltaPolar) < settleEpsilon &&
		c.pan.Length() < settleEpsilon &&
		c.scale == 1.0
}

// Update advances the controls by one step and reports whether the camera
// moved.
func (c *OrbitControls) Update() bool {
	cam := c.camera
	offset := dprec.Vec3Diff(cam.Position, cam.Target)
	radius := offset.Length()
	azimuth := math.Atan2(offset.X, offset.Z)
	polar := 0.0
	if radius > 0 {
		polar = math.Acos(dprec.Clamp(offset.Y/radius, -1.0, 1.0))
	}

	step := 1.0
	if c.EnableDamping {
		step = c.DampingFactor
	}

	azimuth += c.deltaAzimuth * step
	polar = dprec.Clamp(polar+c.deltaPolar*step, polarEpsilon, math.Pi-polarEpsilon)
	radius = dprec.Clamp(radius*c.scale, c.MinDistance, c.MaxDistance)
	pan := dprec.Vec3Prod(c.pan, step)

	target := dprec.Vec3Sum(cam.Target, pan)
	sinPolar := math.Sin(polar)
	position := dprec.Vec3Sum(target, dprec.NewVec3(
		radius*sinPolar*math.Sin(azimuth),
		radius*math.Cos(polar),
		radius*sinPolar*math.Cos(azimuth),
	))

	c.scale = 1.0
	if c.EnableDamping {
		c.deltaAzimuth *= 1.0 - c.DampingFactor
		c.deltaPolar *= 1.0 - c.DampingFactor
		c.pan = dprec.Vec3Prod(c.pan, 1.0-c.DampingFactor)
		if c.Settled() {
			c.deltaAzimuth, c.deltaPolar, c.pan = 0, 0, dprec.ZeroVec3()
		}
	} else {
		c.deltaAzimuth, c.deltaPolar, c.pan = 0, 0, dprec.ZeroVec3()
	}

	moved := dprec.Vec3Diff(position, cam.Position).Length() > settleEpsilon
	cam.Position = position
	cam.Target = target
	return moved
}

// RotateScreen queues a rotation for a pointer drag of dx, dy pixels on a
// viewport height pixels tall. Dragging the full height turns a full circle.
func (c *OrbitControls) RotateScreen(dx, dy float64, height int) {
	if height <= 0 {
		return
	}
	scale := 2.0 * math.Pi / float64(height)
	c.Rotate(-dx*scale, -dy*scale)
}

// PanScreen queues a pan for a pointer drag of dx, dy pixels on a viewport
// height pixels tall. Points at the target distance follow the pointer.
func (c *OrbitControls) PanScreen(dx, dy float64, height int) {
	if height <= 0 {
		return
	}
	cam := c.camera
	distance := dprec.Vec3Diff(cam.Position, cam.Target).Length()
	unitsPerPixel := 2.0 * distance * math.Tan(cam.FoV.Radians()/2.0) / float64(height)

	rotation := cam.Rotation()
	right := dprec.Vec3Prod(rotation.OrientationX(), -dx*unitsPerPixel)
	up := dprec.Vec3Prod(rotation.OrientationY(), dy*unitsPerPixel)
	c.Pan(dprec.Vec3Sum(right, up))
}
