// Package config holds the viewport configuration snapshot shared by the
// world and the render surface.
package config

import "github.com/mokiat/gomath/dprec"

const (
	MinPixelRatio = 1.0
	MaxPixelRatio = 2.0
)

// Configuration is recomputed wholesale on every resize.
type Configuration struct {
	PixelRatio float64
	Width      int
	Height     int
}

// AspectRatio returns Width / Height.
func (c Configuration) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Viewport is the ambient state a Configuration is computed from.
type Viewport interface {
	DevicePixelRatio() float64
	Size() (width, height int)
}

// Compute reads the viewport and returns a new Configuration with the pixel
// ratio clamped to [MinPixelRatio, MaxPixelRatio]. A host element that has
// not been laid out yet may report a zero size; dimensions are kept positive.
func Compute(vp Viewport) Configuration {
	width, height := vp.Size()
	return Configuration{
		PixelRatio: ClampPixelRatio(vp.DevicePixelRatio()),
		Width:      max(width, 1),
		Height:     max(height, 1),
	}
}

func ClampPixelRatio(ratio float64) float64 {
	if ratio != ratio { // NaN
		return MinPixelRatio
	}
	return dprec.Clamp(ratio, MinPixelRatio, MaxPixelRatio)
}

// StaticViewport reports fixed values.
type StaticViewport struct {
	PixelRatio float64
	Width      int
	Height     int
}

func (v StaticViewport) DevicePixelRatio() float64 {
	return v.PixelRatio
}

func (v StaticViewport) Size() (int, int) {
	return v.Width, v.Height
}
