package widget

import (
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/std"
)

const (
	loadingTick     = 500 * time.Millisecond
	loadingMaxDots  = 3
	loadingFontSize = 48.0
)

var Loading = co.Define[*loadingComponent]()

// LoadingData configures a Loading indicator. An empty Text shows "Loading".
type LoadingData struct {
	Text string
}

type loadingComponent struct {
	co.BaseComponent

	elapsedTime time.Duration
	labels      [][]rune

	font         *ui.Font
	maxLabelSize sprec.Vec2
}

func (c *loadingComponent) OnCreate() {
	data := co.GetData[LoadingData](c.Properties())
	c.labels = loadingLabels(data.Text)
	c.elapsedTime = 0

	c.font = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	longest := c.labels[len(c.labels)-1]
	c.maxLabelSize = sprec.Vec2{
		X: c.font.LineWidth(longest, loadingFontSize),
		Y: c.font.LineHeight(loadingFontSize),
	}
}

// loadingLabels returns the animation frames: the text followed by zero up
// to loadingMaxDots dots.
func loadingLabels(text string) [][]rune {
	if text == "" {
		text = "Loading"
	}
	labels := make([][]rune, 0, loadingMaxDots+1)
	for dots := range loadingMaxDots + 1 {
		label := []rune(text)
		for range dots {
			label = append(label, '.')
		}
		labels = append(labels, label)
	}
	return labels
}

func (c *loadingComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:   c,
			IdealSize: opt.V(ui.NewSize(int(c.maxLabelSize.X), int(c.maxLabelSize.Y))),
		})
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithChildren(c.Properties().Children())
	})
}

func (c *loadingComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	c.elapsedTime += canvas.ElapsedTime()
	tickIndex := int(c.elapsedTime / loadingTick)
	text := c.labels[tickIndex%len(c.labels)]

	drawBounds := canvas.DrawBounds(element, false)

	canvas.Push()
	canvas.Translate(drawBounds.Position)
	// Centered on the widest frame so the text does not jitter.
	canvas.Translate(sprec.Vec2{
		X: (drawBounds.Size.X - c.maxLabelSize.X) / 2,
		Y: (drawBounds.Size.Y - c.maxLabelSize.Y) / 2,
	})
	canvas.FillTextLine(text, sprec.ZeroVec2(), ui.Typography{
		Font:  c.font,
		Size:  loadingFontSize,
		Color: ui.White(),
	})
	canvas.Pop()

	element.Invalidate()
}
