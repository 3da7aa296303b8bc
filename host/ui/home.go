package ui

import (
	"fmt"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"

	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/host/session"
)

var HomeScreen = co.Define[*homeScreenComponent]()

type HomeScreenData struct {
	App *applicationComponent
}

var _ ui.ElementKeyboardHandler = (*homeScreenComponent)(nil)

type homeScreenComponent struct {
	co.BaseComponent

	app  *applicationComponent
	host *session.Host

	titleFont *ui.Font
	textFont  *ui.Font
	status    string
}

func (c *homeScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.host = globalState.Host

	componentData := co.GetData[HomeScreenData](c.Properties())
	c.app = componentData.App

	c.titleFont = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	c.textFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")
	c.status = describeCache(c.host.Loader().Stats())
}

func describeCache(stats resources.Stats) string {
	return fmt.Sprintf("%d models and %d textures cached", stats.Meshes, stats.Textures)
}

func (c *homeScreenComponent) Render() co.Instance {
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

		co.WithChild("holder", co.New(std.Element, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.ElementData{
				Layout: layout.Vertical(layout.VerticalSettings{
					ContentAlignment: layout.HorizontalAlignmentCenter,
					ContentSpacing:   15,
				}),
			})

			co.WithChild("title", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      c.titleFont,
					FontSize:  opt.V(float32(48)),
					FontColor: opt.V(ui.White()),
					Text:      "Orbit Viewer",
				})
			}))

			co.WithChild("view-button", co.New(std.Button, func() {
				co.WithData(std.ButtonData{
					Text: "VIEW",
				})
				co.WithCallbackData(std.ButtonCallbackData{
					OnClick: c.onViewClicked,
				})
			}))

			co.WithChild("exit-button", co.New(std.Button, func() {
				co.WithData(std.ButtonData{
					Text: "EXIT",
				})
				co.WithCallbackData(std.ButtonCallbackData{
					OnClick: c.onExitClicked,
				})
			}))

			co.WithChild("status", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      c.textFont,
					FontSize:  opt.V(float32(16)),
					FontColor: opt.V(ui.RGB(0x88, 0x88, 0x88)),
					Text:      c.status,
				})
			}))
		}))
	})
}

func (c *homeScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if event.Action == ui.KeyboardActionUp && event.Code == ui.KeyCodeEscape {
		c.onExitClicked()
		return true
	}
	return false
}

func (c *homeScreenComponent) onViewClicked() {
	c.app.SetActiveView(ViewNameViewer)
}

func (c *homeScreenComponent) onExitClicked() {
	co.Window(c.Scope()).Close()
}
