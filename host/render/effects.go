package render

type BlendFunction int

const (
	BlendFunctionNormal BlendFunction = iota
	BlendFunctionAdd
	BlendFunctionScreen
)

type FXAAEffect struct{}

func NewFXAAEffect() *FXAAEffect {
	return &FXAAEffect{}
}

func (*FXAAEffect) EffectName() string {
	return "fxaa"
}

// SelectiveBloomEffect blooms bright areas of a selection of objects. With
// Inverted set, every object outside the selection blooms instead, which for
// an empty selection means the whole scene.
type SelectiveBloomEffect struct {
	BlendFunction      BlendFunction
	MipmapBlur         bool
	LuminanceThreshold float64
	LuminanceSmoothing float64
	Intensity          float64
	Inverted           bool

	selection map[string]struct{}
}

func NewSelectiveBloomEffect() *SelectiveBloomEffect {
	return &SelectiveBloomEffect{
		BlendFunction:      BlendFunctionAdd,
		MipmapBlur:         true,
		LuminanceThreshold: 0.8,
		LuminanceSmoothing: 0.8,
		Intensity:          1.0,
		Inverted:           true,
		selection:          make(map[string]struct{}),
	}
}

func (*SelectiveBloomEffect) EffectName() string {
	return "selective-bloom"
}

// Select adds an object to the selection.
func (e *SelectiveBloomEffect) Select(object string) {
	e.selection[object] = struct{}{}
}

// Blooms reports whether the named object takes part in the bloom.
func (e *SelectiveBloomEffect) Blooms(object string) bool {
	_, selected := e.selection[object]
	return selected != e.Inverted
}

// BloomsEverything reports whether every object takes part in the bloom.
func (e *SelectiveBloomEffect) BloomsEverything() bool {
	return e.Inverted && len(e.selection) == 0
}

type ToneMappingMode int

const (
	ToneMappingModeReinhard ToneMappingMode = iota
	ToneMappingModeACESFilmic
)

// ToneMappingEffect maps HDR to display range with eye adaptation.
type ToneMappingEffect struct {
	Mode             ToneMappingMode
	Resolution       int
	WhitePoint       float64
	MiddleGrey       float64
	MinLuminance     float64
	AverageLuminance float64
	AdaptationRate   float64
}

func NewToneMappingEffect() *ToneMappingEffect {
	return &ToneMappingEffect{
		Mode:             ToneMappingModeACESFilmic,
		Resolution:       256,
		WhitePoint:       16.0,
		MiddleGrey:       0.6,
		MinLuminance:     0.01,
		AverageLuminance: 0.01,
		AdaptationRate:   1.0,
	}
}

func (*ToneMappingEffect) EffectName() string {
	return "tone-mapping"
}
