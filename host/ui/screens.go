package ui

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/orbit-viewer/host/session"
)

// --- Loading ---

type LoadingPromise interface {
	OnSuccess(func())
	OnError(func())
}

// NewLoadingPromise delivers the outcome of promise on the worker, which for
// the UI is the window thread.
func NewLoadingPromise[T any](worker game.Worker, promise async.Promise[T], onSuccess func(T), onError func(error)) LoadingPromise {
	return &loadingPromise[T]{
		worker:    worker,
		promise:   promise,
		onSuccess: onSuccess,
		onError:   onError,
	}
}

type loadingPromise[T any] struct {
	worker    game.Worker
	promise   async.Promise[T]
	onSuccess func(T)
	onError   func(error)
}

func (p *loadingPromise[T]) OnSuccess(cb func()) {
	p.promise.OnSuccess(func(value T) {
		p.worker.Schedule(func() {
			p.onSuccess(value)
			cb()
		})
	})
}

func (p *loadingPromise[T]) OnError(cb func()) {
	p.promise.OnError(func(err error) {
		p.worker.Schedule(func() {
			p.onError(err)
			cb()
		})
	})
}

// --- Error Screen ---

var ErrorScreen = co.Define[*errorScreenComponent]()

type ErrorScreenData struct {
	App *applicationComponent
}

var _ ui.ElementKeyboardHandler = (*errorScreenComponent)(nil)

type errorScreenComponent struct {
	co.BaseComponent

	app  *applicationComponent
	host *session.Host

	titleFont     *ui.Font
	titleFontSize float32

	messageFont     *ui.Font
	messageFontSize float32

	message string
}

func (c *errorScreenComponent) OnCreate() {
	componentData := co.GetData[ErrorScreenData](c.Properties())
	c.app = componentData.App
	c.host = co.TypedValue[GlobalState](c.Scope()).Host

	c.message = formatError(c.app.LastError())

	c.titleFont = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	c.titleFontSize = float32(48.0)

	c.messageFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")
	c.messageFontSize = float32(24.0)
}

func (c *errorScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("handler", co.New(std.Element, func() {
			co.WithLayoutData(layout.Data{
				Left:   opt.V(0),
				Right:  opt.V(0),
				Top:    opt.V(0),
				Bottom: opt.V(0),
			})
			co.WithData(std.ElementData{
				Essence:       c,
				Enabled:       opt.V(true),
				CanAutoFocus:  opt.V(true),
				CreateFocused: true,
			})
		}))

		co.WithChild("title", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(-150),
			})
			co.WithData(std.LabelData{
				Text:      "ERROR",
				Font:      c.titleFont,
				FontSize:  opt.V(c.titleFontSize),
				FontColor: opt.V(ui.White()),
			})
		}))

		co.WithChild("info", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.LabelData{
				Text:      c.message,
				Font:      c.messageFont,
				FontSize:  opt.V(c.messageFontSize),
				FontColor: opt.V(ui.White()),
			})
		}))
	})
}

// OnKeyboardEvent returns to the home view on Escape. The failed loader is
// dropped so that the next viewer fetches the assets again.
func (c *errorScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if event.Action == ui.KeyboardActionUp && event.Code == ui.KeyCodeEscape {
		c.host.DisposeLoader()
		c.app.SetActiveView(ViewNameHome)
	}
	return true
}

const errorLineLength = 80

func formatError(err error) string {
	wordWrap := func(text string, maxLineLength int) iter.Seq[string] {
		return func(yield func(string) bool) {
			runes := []rune(text)
			for len(runes) > maxLineLength {
				if !yield(string(runes[:maxLineLength])) {
					return
				}
				runes = runes[maxLineLength:]
			}
			if !yield(string(runes)) {
				return
			}
		}
	}

	var builder strings.Builder
	fmt.Fprintln(&builder, "The viewer has encountered an error. Press ESCAPE to return.")
	fmt.Fprintln(&builder)
	fmt.Fprint(&builder, "Error: ")
	if err == nil {
		fmt.Fprintln(&builder, "unknown")
		return builder.String()
	}
	for line := range wordWrap(err.Error(), errorLineLength) {
		fmt.Fprintln(&builder, line)
	}
	return builder.String()
}
