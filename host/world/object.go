package world

import (
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/orbit-viewer/host/assets"
)

// Object is a scene object whose geometry comes from a loaded model.
type Object struct {
	Name     string
	Mesh     string
	Position dprec.Vec3
	Color    Color
	Size     float64
}

func placeholderObject() Object {
	return Object{
		Name:     "placeholder",
		Mesh:     assets.PlaceholderModel,
		Position: dprec.ZeroVec3(),
		Color:    HexColor(0xff0000),
		Size:     1.0,
	}
}

func lightRigObject() Object {
	return Object{
		Name:     "lights",
		Mesh:     assets.LightRigModel,
		Position: dprec.ZeroVec3(),
		Size:     1.0,
	}
}
