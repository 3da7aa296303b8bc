//go:build js

package main

import (
	"fmt"

	jsapp "github.com/mokiat/lacking-js/app"
	jsgame "github.com/mokiat/lacking-js/game"
	jsui "github.com/mokiat/lacking-js/ui"
	"github.com/mokiat/lacking/storage/chunked"

	"github.com/nobonobo/orbit-viewer/host/render"
	"github.com/nobonobo/orbit-viewer/host/resources"
	gameui "github.com/nobonobo/orbit-viewer/host/ui"
)

func runApplication() error {
	storage, err := chunked.NewWebStorage(".")
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	assets, err := resources.NewURLFS(gameui.BaseURL())
	if err != nil {
		return fmt.Errorf("failed to initialize asset file system: %w", err)
	}

	controller := createController(storage, assets, jsgame.NewShaderCollection(), jsgame.NewShaderBuilder(), jsui.NewShaderCollection())

	cfg := jsapp.NewConfig(render.DefaultSurfaceID)
	cfg.AddGLExtension("EXT_color_buffer_float")
	cfg.SetFullscreen(false)
	cfg.SetAudioEnabled(false)
	return jsapp.Run(cfg, controller)
}
