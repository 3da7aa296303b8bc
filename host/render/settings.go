package render

import (
	"fmt"

	"github.com/nobonobo/orbit-viewer/host/world"
)

type ColorSpace int

const (
	ColorSpaceLinear ColorSpace = iota
	ColorSpaceSRGB
)

func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceLinear:
		return "linear"
	case ColorSpaceSRGB:
		return "srgb"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(c))
	}
}

type ToneMapping int

const (
	ToneMappingNone ToneMapping = iota
	ToneMappingACESFilmic
)

func (t ToneMapping) String() string {
	switch t {
	case ToneMappingNone:
		return "none"
	case ToneMappingACESFilmic:
		return "aces-filmic"
	default:
		return fmt.Sprintf("ToneMapping(%d)", int(t))
	}
}

type ShadowMapType int

const (
	ShadowMapBasic ShadowMapType = iota
	ShadowMapPCF
	ShadowMapPCFSoft
)

type FrameBufferType int

const (
	FrameBufferUnsignedByte FrameBufferType = iota
	FrameBufferHalfFloat
)

// Settings are the fixed output surface parameters. Only the pixel ratio
// and size change after construction.
type Settings struct {
	Antialias bool
	Stencil   bool
	Depth     bool

	ClearColor          world.Color
	OutputColorSpace    ColorSpace
	ToneMapping         ToneMapping
	ToneMappingExposure float64

	ShadowMapEnabled    bool
	ShadowMapType       ShadowMapType
	ShadowMapAutoUpdate bool

	FrameBufferType FrameBufferType
}

func DefaultSettings() Settings {
	return Settings{
		Antialias: false,
		Stencil:   false,
		Depth:     false,

		ClearColor:          world.HexColor(0x010101),
		OutputColorSpace:    ColorSpaceSRGB,
		ToneMapping:         ToneMappingACESFilmic,
		ToneMappingExposure: 1.0,

		ShadowMapEnabled:    true,
		ShadowMapType:       ShadowMapPCFSoft,
		ShadowMapAutoUpdate: true,

		FrameBufferType: FrameBufferHalfFloat,
	}
}
