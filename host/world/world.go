// Package world holds the scene container: camera, light rig, the objects
// that make up the scene and the orbit controls that drive the camera.
package world

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/orbit-viewer/host/assets"
	"github.com/nobonobo/orbit-viewer/host/config"
	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/schema"
)

const (
	CameraFoVDegrees = 60.0
	CameraNear       = 0.1
	CameraFar        = 100.0
)

// ResourceLoader is the part of the resource loader the world depends on.
type ResourceLoader interface {
	LoadResourceGroup(ctx context.Context, group *schema.ResourceGroup) error
	WaitResourceGroup(ctx context.Context, name string) error
	GetMesh(name string) (resources.ResourceData, bool)
	GetTexture(name string) (resources.ResourceData, bool)
}

// Presenter mirrors the world into the external scene graph.
type Presenter interface {
	PresentCamera(camera *Camera)
	PresentLights(rig LightRig)
	// Spawn adds an object backed by a loaded mesh. It is called at most
	// once per object.
	Spawn(object Object, mesh resources.ResourceData) error
}

type Option func(*World)

func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithContext sets the context the asset fetches run under.
func WithContext(ctx context.Context) Option {
	return func(w *World) {
		w.ctx = ctx
	}
}

// WithGroup replaces the group requested on construction.
func WithGroup(group *schema.ResourceGroup) Option {
	return func(w *World) {
		w.group = group
	}
}

type World struct {
	logger *slog.Logger
	loader ResourceLoader
	group  *schema.ResourceGroup
	ctx    context.Context

	camera   *Camera
	controls *OrbitControls
	lights   LightRig
	objects  []Object

	ready     chan struct{}
	readyErr  error
	readyMu   sync.Mutex
	listeners []func(error)

	lightsPresented bool
	spawned         bool
}

// New builds the scene and starts loading its assets in the background.
// The world is usable right away; objects backed by assets appear once
// AssetsReady is closed.
func New(cfg config.Configuration, loader ResourceLoader, opts ...Option) *World {
	w := &World{
		logger: slog.Default(),
		loader: loader,
		group:  assets.All,
		ctx:    context.Background(),
		lights: DefaultLightRig(),
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.camera = NewPerspectiveCamera(
		dprec.Degrees(CameraFoVDegrees),
		cfg.AspectRatio(),
		CameraNear,
		CameraFar,
	)
	w.camera.Position = dprec.NewVec3(0.0, 3.0, 3.0)
	w.camera.Target = dprec.ZeroVec3()

	w.controls = NewOrbitControls(w.camera)
	w.controls.EnableDamping = true

	w.objects = []Object{
		placeholderObject(),
		lightRigObject(),
	}

	go w.loadAssets(w.ctx)
	return w
}

func (w *World) loadAssets(ctx context.Context) {
	err := w.loader.LoadResourceGroup(ctx, w.group)
	if err == nil && w.group != nil {
		// Another world may have requested the group first.
		err = w.loader.WaitResourceGroup(ctx, w.group.Name)
	}
	if err != nil {
		w.logger.Error("Failed to load world assets", slog.String("error", err.Error()))
	}

	w.readyMu.Lock()
	w.readyErr = err
	listeners := w.listeners
	w.listeners = nil
	close(w.ready)
	w.readyMu.Unlock()

	for _, listener := range listeners {
		listener(err)
	}
}

func (w *World) Camera() *Camera {
	return w.camera
}

func (w *World) Controls() *OrbitControls {
	return w.controls
}

func (w *World) Lights() LightRig {
	return w.lights
}

func (w *World) Objects() []Object {
	return w.objects
}

// AssetsReady is closed once the asset group finished loading, successfully
// or not.
func (w *World) AssetsReady() <-chan struct{} {
	return w.ready
}

// AssetsErr returns the asset loading error. It is only meaningful after
// AssetsReady is closed.
func (w *World) AssetsErr() error {
	w.readyMu.Lock()
	defer w.readyMu.Unlock()
	return w.readyErr
}

// OnAssetsReady calls fn with the loading result once assets are ready. If
// they already are, fn is called right away on the calling goroutine;
// otherwise it is called on the loading goroutine.
func (w *World) OnAssetsReady(fn func(error)) {
	w.readyMu.Lock()
	select {
	case <-w.ready:
		err := w.readyErr
		w.readyMu.Unlock()
		fn(err)
	default:
		w.listeners = append(w.listeners, fn)
		w.readyMu.Unlock()
	}
}

// Operation exposes asset readiness to the UI loading flow.
func (w *World) Operation() async.Operation {
	return async.NewFuncOperation(func() error {
		<-w.ready
		return w.AssetsErr()
	})
}

// Texture returns a loaded texture by name.
func (w *World) Texture(name string) (resources.ResourceData, bool) {
	return w.loader.GetTexture(name)
}

// Resize updates the camera aspect ratio. Nothing else changes.
func (w *World) Resize(cfg config.Configuration) {
	w.camera.Aspect = cfg.AspectRatio()
	w.camera.UpdateProjection()
}

// Update advances the orbit controls by one damped step.
func (w *World) Update() {
	w.controls.Update()
}

// Present pushes the current camera to p and, the first time it runs after
// assets are ready, spawns every object whose mesh was loaded.
func (w *World) Present(p Presenter) {
	p.PresentCamera(w.camera)
	if !w.lightsPresented {
		p.PresentLights(w.lights)
		w.lightsPresented = true
	}
	if w.spawned {
		return
	}
	select {
	case <-w.ready:
	default:
		return
	}
	w.spawned = true
	for _, object := range w.objects {
		mesh, ok := w.loader.GetMesh(object.Mesh)
		if !ok {
			w.logger.Warn("Mesh not loaded, skipping object",
				slog.String("object", object.Name),
				slog.String("mesh", object.Mesh),
			)
			continue
		}
		if err := p.Spawn(object, mesh); err != nil {
			w.logger.Error("Failed to spawn object",
				slog.String("object", object.Name),
				slog.String("error", err.Error()),
			)
		}
	}
}
