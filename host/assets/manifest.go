// Package assets declares the resource groups the viewer knows about.
package assets

import "github.com/nobonobo/orbit-viewer/schema"

// Item names shared with the scene code.
const (
	PlaceholderModel = "placeholder"
	LightRigModel    = "light-rig"
	GroundTexture    = "ground"
)

// All is the group requested by the world on construction.
var All = &schema.ResourceGroup{
	Name: "all",
	Items: []schema.ResourceItem{
		{
			Name: LightRigModel,
			Path: "light-rig.dat",
			Type: schema.ResourceTypeModel,
		},
		{
			Name: PlaceholderModel,
			Path: "placeholder.dat",
			Type: schema.ResourceTypeModel,
		},
		{
			Name: GroundTexture,
			Path: "textures/ground.png",
			Type: schema.ResourceTypeTexture,
		},
	},
}

// Groups lists every declared group by name.
var Groups = map[string]*schema.ResourceGroup{
	All.Name: All,
}
