package config

import "sync"

// ElementViewport is the Viewport of the UI element that hosts the viewer.
// The element reports its size through SetSize; the pixel density comes from
// the platform.
type ElementViewport struct {
	mu     sync.Mutex
	width  int
	height int
}

func NewElementViewport(width, height int) *ElementViewport {
	return &ElementViewport{
		width:  width,
		height: height,
	}
}

// SetSize stores the element size and reports whether it changed.
func (v *ElementViewport) SetSize(width, height int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.width == width && v.height == height {
		return false
	}
	v.width = width
	v.height = height
	return true
}

func (v *ElementViewport) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

func (v *ElementViewport) DevicePixelRatio() float64 {
	return DevicePixelRatio()
}
