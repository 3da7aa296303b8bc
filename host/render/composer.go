package render

import (
	"fmt"

	"github.com/nobonobo/orbit-viewer/host/world"
)

// View is what the base scene pass renders.
type View interface {
	Camera() *world.Camera
}

// Frame describes one composed frame for the surface to draw.
type Frame struct {
	Index   uint64
	Camera  *world.Camera
	Effects []Effect
}

type Pass interface {
	Name() string
	Apply(frame *Frame) error
}

type Effect interface {
	EffectName() string
}

// RenderPass renders the scene through the view's camera.
type RenderPass struct {
	view View
}

func NewRenderPass(view View) *RenderPass {
	return &RenderPass{view: view}
}

func (p *RenderPass) Name() string {
	return "render"
}

func (p *RenderPass) Apply(frame *Frame) error {
	camera := p.view.Camera()
	if camera == nil {
		return fmt.Errorf("render pass: view has no camera")
	}
	frame.Camera = camera
	return nil
}

// EffectPass merges several effects into one full-screen pass. Effects are
// fixed at construction.
type EffectPass struct {
	camera  *world.Camera
	effects []Effect
}

func NewEffectPass(camera *world.Camera, effects ...Effect) *EffectPass {
	return &EffectPass{
		camera:  camera,
		effects: effects,
	}
}

func (p *EffectPass) Name() string {
	return "effect"
}

func (p *EffectPass) Effects() []Effect {
	return p.effects
}

func (p *EffectPass) Apply(frame *Frame) error {
	if frame.Camera == nil {
		frame.Camera = p.camera
	}
	frame.Effects = append(frame.Effects, p.effects...)
	return nil
}

// Composer runs its passes in order and hands the result to the surface.
type Composer struct {
	surface         Surface
	frameBufferType FrameBufferType
	passes          []Pass
	frames          uint64
}

func NewComposer(surface Surface, frameBufferType FrameBufferType) *Composer {
	return &Composer{
		surface:         surface,
		frameBufferType: frameBufferType,
	}
}

func (c *Composer) AddPass(pass Pass) {
	c.passes = append(c.passes, pass)
}

func (c *Composer) Passes() []Pass {
	return c.passes
}

func (c *Composer) FrameBufferType() FrameBufferType {
	return c.frameBufferType
}

// Frames returns the number of frames drawn so far.
func (c *Composer) Frames() uint64 {
	return c.frames
}

func (c *Composer) Render() error {
	frame := Frame{Index: c.frames}
	for _, pass := range c.passes {
		if err := pass.Apply(&frame); err != nil {
			return fmt.Errorf("failed to apply %s pass: %w", pass.Name(), err)
		}
	}
	if err := c.surface.Draw(frame); err != nil {
		return fmt.Errorf("failed to draw frame %d: %w", frame.Index, err)
	}
	c.frames++
	return nil
}
