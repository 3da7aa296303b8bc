package stage

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game/graphics"

	"github.com/nobonobo/orbit-viewer/host/render"
	"github.com/nobonobo/orbit-viewer/host/world"
)

// Iterations of the bloom blur with and without mipmap blurring.
const (
	bloomMipmapIterations = 2
	bloomPlainIterations  = 1
)

// Pipeline is the engine stage layout for an output configuration. The
// engine builds its stages once, so the pipeline has to be known before the
// game controller is created.
type Pipeline struct {
	ShadowMapCount int
	ShadowMapSize  int

	Bloom           bool
	BloomIterations int

	ExposureProbe bool
	ToneMapping   graphics.ToneMapping

	// Unsupported names effects the engine has no stage for.
	Unsupported []string
}

// PlanPipeline maps the surface settings, the post-processing chain and the
// light rig onto engine stages.
func PlanPipeline(settings render.Settings, effects []render.Effect, rig world.LightRig) Pipeline {
	p := Pipeline{
		// The engine has no filmic curve; exponential is the closest.
		ToneMapping: graphics.ExponentialToneMapping,
	}
	if settings.ShadowMapEnabled && rig.Directional.CastShadow {
		p.ShadowMapCount = 1
		p.ShadowMapSize = rig.Directional.Shadow.MapWidth
	}
	for _, effect := range effects {
		switch effect := effect.(type) {
		case *render.ToneMappingEffect:
			p.ExposureProbe = effect.AdaptationRate > 0
			if effect.Mode == render.ToneMappingModeReinhard {
				p.ToneMapping = graphics.ReinhardToneMapping
			}
		case *render.SelectiveBloomEffect:
			if !effect.BloomsEverything() {
				p.Unsupported = append(p.Unsupported, effect.EffectName())
				continue
			}
			p.Bloom = true
			p.BloomIterations = bloomPlainIterations
			if effect.MipmapBlur {
				p.BloomIterations = bloomMipmapIterations
			}
		default:
			p.Unsupported = append(p.Unsupported, effect.EffectName())
		}
	}
	return p
}

// DefaultPipeline plans the pipeline for the default surface settings,
// effect chain and light rig.
func DefaultPipeline() Pipeline {
	return PlanPipeline(render.DefaultSettings(), render.DefaultEffects(), world.DefaultLightRig())
}

// Options returns the engine options that realize the pipeline.
func (p Pipeline) Options() []graphics.Option {
	result := []graphics.Option{
		graphics.WithDirectionalShadowMapCount(p.ShadowMapCount),
		graphics.WithStageBuilder(p.buildStages),
	}
	if p.ShadowMapCount > 0 {
		result = append(result, graphics.WithDirectionalShadowMapSize(p.ShadowMapSize))
	}
	return result
}

func (p Pipeline) buildStages(provider *graphics.StageProvider) []graphics.Stage {
	depthSourceStage := provider.CreateDepthSourceStage()
	geometrySourceStage := provider.CreateGeometrySourceStage()
	forwardSourceStage := provider.CreateForwardSourceStage()
	shadowStage := provider.CreateShadowStage()

	geometryStage := provider.CreateGeometryStage(graphics.GeometryStageInput{
		AlbedoMetallicTexture:  geometrySourceStage.AlbedoMetallicTexture,
		NormalRoughnessTexture: geometrySourceStage.NormalRoughnessTexture,
		DepthTexture:           depthSourceStage.DepthTexture,
	})
	lightingStage := provider.CreateLightingStage(graphics.LightingStageInput{
		AlbedoMetallicTexture:  geometrySourceStage.AlbedoMetallicTexture,
		NormalRoughnessTexture: geometrySourceStage.NormalRoughnessTexture,
		DepthTexture:           depthSourceStage.DepthTexture,
		HDRTexture:             forwardSourceStage.HDRTexture,
	})
	forwardStage := provider.CreateForwardStage(graphics.ForwardStageInput{
		HDRTexture:   forwardSourceStage.HDRTexture,
		DepthTexture: depthSourceStage.DepthTexture,
	})

	stages := []graphics.Stage{
		depthSourceStage,
		geometrySourceStage,
		forwardSourceStage,
		shadowStage,
		geometryStage,
		lightingStage,
		forwardStage,
	}

	if p.ExposureProbe {
		stages = append(stages, provider.CreateExposureProbeStage(graphics.ExposureProbeStageInput{
			HDRTexture: forwardSourceStage.HDRTexture,
		}))
	}

	toneMappingInput := graphics.ToneMappingStageInput{
		HDRTexture: forwardSourceStage.HDRTexture,
	}
	if p.Bloom {
		bloomStage := provider.CreateBloomStage(graphics.BloomStageInput{
			HDRTexture: forwardSourceStage.HDRTexture,
		})
		bloomStage.SetIterations(p.BloomIterations)
		toneMappingInput.BloomTexture = opt.V[graphics.StageTextureParameter](bloomStage.BloomTexture)
		stages = append(stages, bloomStage)
	}

	toneMappingStage := provider.CreateToneMappingStage(toneMappingInput)
	toneMappingStage.SetToneMapping(p.ToneMapping)
	return append(stages, toneMappingStage)
}
