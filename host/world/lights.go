package world

import "github.com/mokiat/gomath/dprec"

// Color is a linear RGB triple in [0, 1].
type Color struct {
	R, G, B float64
}

// HexColor converts 0xRRGGBB to a Color.
func HexColor(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255.0,
		G: float64((hex>>8)&0xff) / 255.0,
		B: float64(hex&0xff) / 255.0,
	}
}

// Scaled returns the color multiplied by intensity.
func (c Color) Scaled(intensity float64) Color {
	return Color{
		R: c.R * intensity,
		G: c.G * intensity,
		B: c.B * intensity,
	}
}

// Light rig constants. They are untyped so that asset authoring can fold
// them into constant colors.
const (
	HemisphereSkyColor    = 0xffffbb
	HemisphereGroundColor = 0x080820
	HemisphereIntensity   = 0.2

	KeyLightColor     = 0xffffff
	KeyLightIntensity = 0.5
	KeyLightShadowMap = 2048
	KeyLightBias      = -0.000008
)

type HemisphereLight struct {
	SkyColor    Color
	GroundColor Color
	Intensity   float64
}

type Shadow struct {
	MapWidth  int
	MapHeight int
	Bias      float64
}

type DirectionalLight struct {
	Color      Color
	Intensity  float64
	Position   dprec.Vec3
	Target     dprec.Vec3
	CastShadow bool
	Shadow     Shadow
}

// Rotation orients the light so that its -Z axis points at Target.
func (l DirectionalLight) Rotation() dprec.Quat {
	return lookRotation(l.Position, l.Target)
}

type LightRig struct {
	Hemisphere  HemisphereLight
	Directional DirectionalLight
}

// DefaultLightRig is a dim sky/ground fill plus one shadow casting key light.
func DefaultLightRig() LightRig {
	return LightRig{
		Hemisphere: HemisphereLight{
			SkyColor:    HexColor(HemisphereSkyColor),
			GroundColor: HexColor(HemisphereGroundColor),
			Intensity:   HemisphereIntensity,
		},
		Directional: DirectionalLight{
			Color:      HexColor(KeyLightColor),
			Intensity:  KeyLightIntensity,
			Position:   dprec.NewVec3(2.5, 7.0, 2.0),
			Target:     dprec.ZeroVec3(),
			CastShadow: true,
			Shadow: Shadow{
				MapWidth:  KeyLightShadowMap,
				MapHeight: KeyLightShadowMap,
				Bias:      KeyLightBias,
			},
		},
	}
}
