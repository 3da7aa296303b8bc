// Package render owns the output surface and the post-processing pipeline
// that draws the world into it.
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nobonobo/orbit-viewer/host/config"
	"github.com/nobonobo/orbit-viewer/host/world"
)

var (
	ErrNoSurface  = errors.New("no drawing surface")
	ErrNoComposer = errors.New("composer not initialized")
)

// Surface is the drawing target provided by the graphics engine.
type Surface interface {
	Configure(settings Settings) error
	SetPixelRatio(ratio float64)
	SetSize(width, height int)
	Draw(frame Frame) error
}

// SurfaceProvider acquires the named surface from the environment.
type SurfaceProvider func(id string) (Surface, error)

// DefaultSurfaceID names the surface the host provides.
const DefaultSurfaceID = "screen"

type Option func(*Renderer)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

func WithSettings(settings Settings) Option {
	return func(r *Renderer) {
		r.settings = settings
	}
}

func WithSurfaceID(id string) Option {
	return func(r *Renderer) {
		r.surfaceID = id
	}
}

type Renderer struct {
	logger    *slog.Logger
	settings  Settings
	surfaceID string

	surface  Surface
	composer *Composer
}

// New acquires and configures the surface. Failing to get one is fatal for
// the caller: there is no fallback.
func New(provider SurfaceProvider, cfg config.Configuration, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		logger:    slog.Default(),
		settings:  DefaultSettings(),
		surfaceID: DefaultSurfaceID,
	}
	for _, opt := range opts {
		opt(r)
	}

	if provider == nil {
		return nil, fmt.Errorf("surface %q: %w", r.surfaceID, ErrNoSurface)
	}
	surface, err := provider(r.surfaceID)
	if err != nil {
		return nil, fmt.Errorf("surface %q: %w: %w", r.surfaceID, ErrNoSurface, err)
	}
	if surface == nil {
		return nil, fmt.Errorf("surface %q: %w", r.surfaceID, ErrNoSurface)
	}
	if err := surface.Configure(r.settings); err != nil {
		return nil, fmt.Errorf("failed to configure surface %q: %w", r.surfaceID, err)
	}
	surface.SetPixelRatio(cfg.PixelRatio)
	surface.SetSize(cfg.Width, cfg.Height)
	r.surface = surface

	r.logger.Debug("Surface ready",
		slog.String("surface", r.surfaceID),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Float64("pixel_ratio", cfg.PixelRatio),
	)
	return r, nil
}

func (r *Renderer) Surface() Surface {
	return r.surface
}

func (r *Renderer) Settings() Settings {
	return r.settings
}

func (r *Renderer) Composer() *Composer {
	return r.composer
}

// InitComposer builds the pipeline: the base scene pass followed by one
// effect pass with anti-aliasing, tone mapping and selective bloom.
func (r *Renderer) InitComposer(w *world.World) {
	composer := NewComposer(r.surface, r.settings.FrameBufferType)
	composer.AddPass(NewRenderPass(w))
	composer.AddPass(NewEffectPass(w.Camera(), DefaultEffects()...))
	r.composer = composer
}

// DefaultEffects returns a fresh post-processing chain in pass order.
func DefaultEffects() []Effect {
	return []Effect{
		NewFXAAEffect(),
		NewToneMappingEffect(),
		NewSelectiveBloomEffect(),
	}
}

func (r *Renderer) Resize(cfg config.Configuration) {
	r.surface.SetPixelRatio(cfg.PixelRatio)
	r.surface.SetSize(cfg.Width, cfg.Height)
}

// Update runs the pipeline once.
func (r *Renderer) Update() error {
	if r.composer == nil {
		return ErrNoComposer
	}
	return r.composer.Render()
}
