//go:build !js

package config

// DevicePixelRatio returns the platform pixel density. The native host sizes
// its framebuffer in physical pixels already, so the ratio is always 1.
func DevicePixelRatio() float64 {
	return MinPixelRatio
}
