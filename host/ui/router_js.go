//go:build js

package ui

import (
	"log/slog"
	"net/url"
	"strings"
	"syscall/js"
)

var (
	window      = js.Global().Get("window")
	location    = js.Global().Get("location")
	initialized = false
	params      url.Values
)

func init() {
	u, err := url.Parse(location.Get("href").String())
	if err != nil {
		params = url.Values{}
		return
	}
	params = u.Query()
}

// BaseURL is the page URL without query or fragment. Assets are served
// relative to it.
func BaseURL() string {
	return location.Get("origin").String() + location.Get("pathname").String()
}

// debugRequested reports whether the page was opened with ?debug.
func debugRequested() bool {
	return params.Has("debug")
}

func getViewFromHash() ViewName {
	return ViewName(strings.TrimPrefix(location.Get("hash").String(), "#"))
}

// initRouter keeps the active view and the location hash in sync, so that
// reloading the page or using the browser history reopens the same view.
func initRouter(app *applicationComponent) {
	if view := getViewFromHash(); view != "" && view != ViewNameError {
		slog.Debug("Initial view", slog.String("view", view))
		app.activeView = view
	}
	initialized = true

	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		view := getViewFromHash()
		if view != "" && view != app.ActiveView() {
			slog.Debug("View changed", slog.String("view", view))
			app.SetActiveView(view)
		}
		return nil
	})
	window.Call("addEventListener", "hashchange", cb)
}

func updateHash(view ViewName) {
	if !initialized {
		return
	}
	switch view {
	default:
		return
	case ViewNameHome, ViewNameViewer:
	}
	targetHash := "#" + view
	if location.Get("hash").String() != targetHash {
		location.Set("hash", targetHash)
	}
}
