package ui

import (
	"log/slog"

	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/mvc"
	"github.com/mokiat/lacking/ui/std"

	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/host/session"
	"github.com/nobonobo/orbit-viewer/host/stage"
)

// BootstrapApplication creates the session host for the window and mounts the
// application. Models are fetched through the engine, textures through the
// given fetcher.
func BootstrapApplication(window *ui.Window, gameController *game.Controller, textures resources.Fetcher) {
	engine := gameController.Engine()
	resourceSet := engine.CreateResourceSet()
	eventBus := mvc.NewEventBus()

	logger := slog.Default()
	host := session.NewHost(func() *resources.Loader {
		return resources.NewLoader(stage.NewModelFetcher(resourceSet), textures,
			resources.WithLogger(logger),
		)
	}, session.WithLogger(logger))

	scope := co.RootScope(window)
	scope = co.TypedValueScope(scope, eventBus)
	scope = co.TypedValueScope(scope, GlobalState{
		Engine:      engine,
		ResourceSet: resourceSet,
		Host:        host,
		Logger:      logger,
	})
	co.Initialize(scope, co.New(Application, nil))
}

var Application = mvc.EventListener(co.Define[*applicationComponent]())

type applicationComponent struct {
	co.BaseComponent

	eventBus   *mvc.EventBus
	activeView ViewName
	lastError  error
}

func (c *applicationComponent) OnCreate() {
	c.eventBus = co.TypedValue[*mvc.EventBus](c.Scope())
	c.activeView = ViewNameHome
	initRouter(c)
}

func (c *applicationComponent) Render() co.Instance {
	return co.New(std.Switch, func() {
		co.WithData(std.SwitchData{
			ChildKey: c.activeView,
		})

		co.WithChild(ViewNameHome, co.New(HomeScreen, func() {
			co.WithData(HomeScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameViewer, co.New(ViewerScreen, func() {
			co.WithData(ViewerScreenData{
				App: c,
			})
		}))
		co.WithChild(ViewNameError, co.New(ErrorScreen, func() {
			co.WithData(ErrorScreenData{
				App: c,
			})
		}))
	})
}

func (c *applicationComponent) OnEvent(event mvc.Event) {
	switch event.(type) {
	case ApplicationActiveViewChangedEvent:
		c.Invalidate()
	}
}

func (c *applicationComponent) ActiveView() ViewName {
	return c.activeView
}

func (c *applicationComponent) SetActiveView(view ViewName) {
	if !isKnownView(view) {
		return
	}
	c.activeView = view
	updateHash(view)
	c.eventBus.Notify(ApplicationActiveViewChangedEvent{
		ActiveView: view,
	})
}

// LastError returns the error shown by the error view.
func (c *applicationComponent) LastError() error {
	return c.lastError
}

func (c *applicationComponent) ShowError(err error) {
	c.lastError = err
	c.SetActiveView(ViewNameError)
}

const (
	ViewNameHome   ViewName = "home"
	ViewNameViewer ViewName = "viewer"
	ViewNameError  ViewName = "error"
)

type ViewName = string

func isKnownView(view ViewName) bool {
	switch view {
	case ViewNameHome, ViewNameViewer, ViewNameError:
		return true
	default:
		return false
	}
}

type ApplicationActiveViewChangedEvent struct {
	ActiveView ViewName
}
