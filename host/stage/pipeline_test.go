package stage

import (
	"slices"
	"testing"

	"github.com/mokiat/lacking/game/graphics"

	"github.com/nobonobo/orbit-viewer/host/render"
	"github.com/nobonobo/orbit-viewer/host/world"
)

func TestDefaultPipeline(t *testing.T) {
	p := DefaultPipeline()
	if p.ShadowMapCount != 1 || p.ShadowMapSize != world.KeyLightShadowMap {
		t.Errorf("shadow maps = %d x %d", p.ShadowMapCount, p.ShadowMapSize)
	}
	if !p.Bloom || p.BloomIterations != bloomMipmapIterations {
		t.Errorf("bloom = %v, %d iterations", p.Bloom, p.BloomIterations)
	}
	if !p.ExposureProbe {
		t.Error("adaptive tone mapping without an exposure probe")
	}
	if p.ToneMapping != graphics.ExponentialToneMapping {
		t.Errorf("tone mapping = %q", p.ToneMapping)
	}
	if !slices.Equal(p.Unsupported, []string{"fxaa"}) {
		t.Errorf("unsupported = %v", p.Unsupported)
	}
	if got := len(p.Options()); got != 3 {
		t.Errorf("%d options", got)
	}
}

func TestPlanPipelineWithoutShadows(t *testing.T) {
	settings := render.DefaultSettings()
	settings.ShadowMapEnabled = false
	p := PlanPipeline(settings, nil, world.DefaultLightRig())
	if p.ShadowMapCount != 0 {
		t.Fatalf("ShadowMapCount = %d", p.ShadowMapCount)
	}
	if got := len(p.Options()); got != 2 {
		t.Fatalf("%d options", got)
	}

	rig := world.DefaultLightRig()
	rig.Directional.CastShadow = false
	if p := PlanPipeline(render.DefaultSettings(), nil, rig); p.ShadowMapCount != 0 {
		t.Fatalf("ShadowMapCount = %d for a light without shadows", p.ShadowMapCount)
	}
}

func TestPlanPipelineEffects(t *testing.T) {
	fixed := render.NewToneMappingEffect()
	fixed.AdaptationRate = 0
	fixed.Mode = render.ToneMappingModeReinhard

	selective := render.NewSelectiveBloomEffect()
	selective.Select("placeholder")

	plain := render.NewSelectiveBloomEffect()
	plain.MipmapBlur = false

	tests := []struct {
		name        string
		effects     []render.Effect
		bloom       bool
		iterations  int
		probe       bool
		toneMapping graphics.ToneMapping
		unsupported []string
	}{
		{
			name:        "fixed reinhard",
			effects:     []render.Effect{fixed},
			toneMapping: graphics.ReinhardToneMapping,
		},
		{
			name:        "partial selection",
			effects:     []render.Effect{selective},
			toneMapping: graphics.ExponentialToneMapping,
			unsupported: []string{"selective-bloom"},
		},
		{
			name:        "bloom without mipmaps",
			effects:     []render.Effect{plain, render.NewToneMappingEffect()},
			bloom:       true,
			iterations:  bloomPlainIterations,
			probe:       true,
			toneMapping: graphics.ExponentialToneMapping,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlanPipeline(render.DefaultSettings(), tt.effects, world.DefaultLightRig())
			if p.Bloom != tt.bloom || p.BloomIterations != tt.iterations {
				t.Errorf("bloom = %v, %d iterations", p.Bloom, p.BloomIterations)
			}
			if p.ExposureProbe != tt.probe {
				t.Errorf("ExposureProbe = %v", p.ExposureProbe)
			}
			if p.ToneMapping != tt.toneMapping {
				t.Errorf("ToneMapping = %q", p.ToneMapping)
			}
			if !slices.Equal(p.Unsupported, tt.unsupported) {
				t.Errorf("Unsupported = %v", p.Unsupported)
			}
		})
	}
}
