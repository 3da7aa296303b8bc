package ui

import (
	"log/slog"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/debug/metric/metricui"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/orbit-viewer/host/assets"
	"github.com/nobonobo/orbit-viewer/host/config"
	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/host/session"
	"github.com/nobonobo/orbit-viewer/host/stage"
	"github.com/nobonobo/orbit-viewer/host/ui/widget"
	"github.com/nobonobo/orbit-viewer/host/world"
)

// Size assumed until the element is laid out.
const (
	initialWidth  = 1280
	initialHeight = 800
)

var ViewerScreen = co.Define[*viewerScreenComponent]()

type ViewerScreenData struct {
	App *applicationComponent
}

type viewerScreenComponent struct {
	co.BaseComponent

	app    *applicationComponent
	engine *game.Engine
	host   *session.Host
	logger *slog.Logger

	stage    *stage.Stage
	session  *session.Session
	frames   *frameQueue
	resizes  *session.ResizeSignal
	viewport *config.ElementViewport
	orbit    orbitInput

	loading      bool
	debugVisible bool
}

var _ ui.ElementRenderHandler = (*viewerScreenComponent)(nil)
var _ ui.ElementKeyboardHandler = (*viewerScreenComponent)(nil)
var _ ui.ElementMouseHandler = (*viewerScreenComponent)(nil)

func (c *viewerScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.engine = globalState.Engine
	c.host = globalState.Host
	c.logger = globalState.Logger

	componentData := co.GetData[ViewerScreenData](c.Properties())
	c.app = componentData.App

	c.debugVisible = debugRequested()
	c.loading = true
	c.frames = newFrameQueue(c.Invalidate)
	c.resizes = &session.ResizeSignal{}
	c.viewport = config.NewElementViewport(initialWidth, initialHeight)

	if err := c.startSession(); err != nil {
		c.logger.Error("Failed to start viewer", slog.String("error", err.Error()))
		// The view switch must not happen while this view is being created.
		co.Window(c.Scope()).Schedule(func() {
			c.app.ShowError(err)
		})
		return
	}

	w := c.session.World()
	promise := NewLoadingPromise(
		co.Window(c.Scope()),
		async.InjectionPromise(w.Operation(), w),
		func(w *world.World) {
			c.loading = false
			c.logAssets(w)
		},
		func(err error) {
			c.app.lastError = err
		},
	)
	// The view may be gone by the time the assets settle.
	promise.OnSuccess(func() {
		if c.session != nil {
			c.Invalidate()
		}
	})
	promise.OnError(func() {
		if c.session != nil {
			c.app.SetActiveView(ViewNameError)
		}
	})
}

func (c *viewerScreenComponent) logAssets(w *world.World) {
	stats := c.host.Loader().Stats()
	attrs := []any{
		slog.Int("models", stats.Meshes),
		slog.Int("textures", stats.Textures),
	}
	if data, ok := w.Texture(assets.GroundTexture); ok {
		if texture, ok := data.Data.(*resources.Texture); ok {
			width, height := texture.Size()
			attrs = append(attrs,
				slog.String("ground_format", texture.Format),
				slog.Int("ground_width", width),
				slog.Int("ground_height", height),
			)
		}
	}
	c.logger.Info("Viewer ready", attrs...)
}

// startSession runs the stage only when the host creates a new session. A
// session that is already running keeps the engine scene it has.
func (c *viewerScreenComponent) startSession() error {
	st, err := stage.New(c.engine, stage.WithLogger(c.logger))
	if err != nil {
		return err
	}
	s, err := c.host.Start(session.Environment{
		Viewport:  c.viewport,
		Frames:    c.frames,
		Resizes:   c.resizes,
		Surfaces:  st.Provide,
		Presenter: st,
	})
	if err != nil {
		st.Dispose()
		return err
	}
	if st.Provided() {
		c.stage = st
	}
	c.session = s
	return nil
}

func (c *viewerScreenComponent) OnDelete() {
	if c.session != nil {
		c.session.Dispose()
		c.session = nil
	}
	if c.stage != nil {
		c.stage.Dispose()
		c.stage = nil
	}
}

func (c *viewerScreenComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	bounds := element.Bounds()
	if c.viewport.SetSize(bounds.Width, bounds.Height) {
		c.resizes.Notify()
	}
	c.frames.Run()
}

func (c *viewerScreenComponent) OnMouseEvent(element *ui.Element, event ui.MouseEvent) bool {
	if c.session == nil {
		return false
	}
	return c.orbit.Handle(c.session.World().Controls(), event, element.Bounds().Height)
}

func (c *viewerScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	switch event.Code {

	case ui.KeyCodeEscape:
		if event.Action == ui.KeyboardActionUp {
			c.app.SetActiveView(ViewNameHome)
		}
		return true

	case ui.KeyCodeTab:
		if event.Action == ui.KeyboardActionDown {
			c.debugVisible = !c.debugVisible
			c.Invalidate()
		}
		return true

	default:
		return false
	}
}

func (c *viewerScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		if c.debugVisible {
			co.WithChild("flamegraph", co.New(metricui.FlameGraph, func() {
				co.WithData(metricui.FlameGraphData{
					UpdateInterval: time.Second,
				})
				co.WithLayoutData(layout.Data{
					Top:   opt.V(0),
					Left:  opt.V(0),
					Right: opt.V(0),
				})
			}))
		}

		if c.loading {
			co.WithChild("loading", co.New(widget.Loading, func() {
				co.WithLayoutData(layout.Data{
					HorizontalCenter: opt.V(0),
					VerticalCenter:   opt.V(0),
				})
				co.WithData(widget.LoadingData{
					Text: "Loading assets",
				})
			}))
		}
	})
}
