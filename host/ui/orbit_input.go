package ui

import (
	"math"

	"github.com/mokiat/lacking/ui"

	"github.com/nobonobo/orbit-viewer/host/world"
)

// Distance multiplier per unit of wheel scroll.
const wheelZoomStep = 0.95

// orbitInput turns pointer drags and wheel scrolls into orbit motion. The
// left button rotates and the right button pans.
type orbitInput struct {
	dragging bool
	button   ui.MouseButton
	last     ui.Position
}

// Handle applies the event to controls and reports whether it was consumed.
func (in *orbitInput) Handle(controls *world.OrbitControls, event ui.MouseEvent, height int) bool {
	switch event.Action {
	case ui.MouseActionDown:
		if event.Button != ui.MouseButtonLeft && event.Button != ui.MouseButtonRight {
			return false
		}
		in.dragging = true
		in.button = event.Button
		in.last = event.Position()
		return true

	case ui.MouseActionMove:
		if !in.dragging {
			return false
		}
		position := event.Position()
		dx := float64(position.X - in.last.X)
		dy := float64(position.Y - in.last.Y)
		in.last = position
		if in.button == ui.MouseButtonRight {
			controls.PanScreen(dx, dy, height)
		} else {
			controls.RotateScreen(dx, dy, height)
		}
		return true

	case ui.MouseActionUp, ui.MouseActionLeave:
		wasDragging := in.dragging
		in.dragging = false
		return wasDragging

	case ui.MouseActionScroll:
		if event.ScrollY == 0 {
			return false
		}
		controls.Zoom(math.Pow(wheelZoomStep, float64(event.ScrollY)))
		return true

	default:
		return false
	}
}
