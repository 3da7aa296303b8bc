package stage

import "github.com/nobonobo/orbit-viewer/host/render"

// Exposure is the camera exposure derived from a tone mapping effect.
type Exposure struct {
	Auto     bool
	Speed    float32
	Exposure float32
}

// exposureOf derives the camera exposure from the first tone mapping effect.
// A positive adaptation rate turns on automatic exposure.
func exposureOf(effects []render.Effect, base float64) (Exposure, bool) {
	for _, effect := range effects {
		toneMapping, ok := effect.(*render.ToneMappingEffect)
		if !ok {
			continue
		}
		result := Exposure{
			Exposure: float32(base),
		}
		if toneMapping.AdaptationRate > 0 {
			result.Auto = true
			result.Speed = float32(toneMapping.AdaptationRate)
		}
		// Middle grey over average luminance is the key value of the scene.
		if toneMapping.AverageLuminance > 0 && toneMapping.MiddleGrey > 0 && !result.Auto {
			result.Exposure = float32(base * toneMapping.MiddleGrey / toneMapping.AverageLuminance)
		}
		return result, true
	}
	return Exposure{}, false
}
