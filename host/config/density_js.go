//go:build js

package config

import "syscall/js"

var window = js.Global().Get("window")

// DevicePixelRatio returns window.devicePixelRatio, or 1 when the browser
// does not report one.
func DevicePixelRatio() float64 {
	ratio := window.Get("devicePixelRatio")
	if ratio.Type() != js.TypeNumber {
		return MinPixelRatio
	}
	return ratio.Float()
}
