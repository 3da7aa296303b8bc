package main

import (
	"github.com/mokiat/lacking/game/asset/dsl"

	"github.com/nobonobo/orbit-viewer/host/assets"
	"github.com/nobonobo/orbit-viewer/host/stage"
	"github.com/nobonobo/orbit-viewer/host/world"
)

// Channels of the light rig colors, already scaled by intensity.
const (
	skyR = world.HemisphereIntensity * ((world.HemisphereSkyColor >> 16) & 0xff) / 255.0
	skyG = world.HemisphereIntensity * ((world.HemisphereSkyColor >> 8) & 0xff) / 255.0
	skyB = world.HemisphereIntensity * (world.HemisphereSkyColor & 0xff) / 255.0

	keyR = world.KeyLightIntensity * ((world.KeyLightColor >> 16) & 0xff) / 255.0
	keyG = world.KeyLightIntensity * ((world.KeyLightColor >> 8) & 0xff) / 255.0
	keyB = world.KeyLightIntensity * (world.KeyLightColor & 0xff) / 255.0
)

var _ = func() any {
	rig := world.DefaultLightRig()

	sky := dsl.CreateSky(dsl.CreateColorSkyMaterial(
		dsl.RGB(skyR, skyG, skyB),
	))

	keyLight := dsl.CreateDirectionalLight(
		dsl.SetEmitColor(dsl.RGB(keyR, keyG, keyB)),
		dsl.SetCastShadow(dsl.Const(rig.Directional.CastShadow)),
	)

	return dsl.Save(assetPath(assets.LightRigModel), dsl.CreateModel(
		dsl.AddNode(dsl.CreateNode("Sky",
			dsl.AddAttachment(sky),
		)),
		dsl.AddNode(dsl.CreateNode(stage.KeyLightNodeName,
			dsl.AddAttachment(keyLight),
			dsl.SetRotation(dsl.Const(rig.Directional.Rotation())),
		)),
		dsl.AddNode(dsl.CreateNode(stage.CameraNodeName)),
	))
}()

var _ = dsl.Save(assetPath(assets.PlaceholderModel),
	dsl.OpenGLTFModel("resources/raw/models/placeholder.glb"),
)

// assetPath returns the manifest path of the named model.
func assetPath(name string) string {
	for _, item := range assets.All.Items {
		if item.Name == name && !item.Type.IsTexture() {
			return item.Path
		}
	}
	panic("model " + name + " is not in the manifest")
}
