//go:build !js

package main

import (
	"fmt"
	"os"

	nativeapp "github.com/mokiat/lacking-native/app"
	nativegame "github.com/mokiat/lacking-native/game"
	nativeui "github.com/mokiat/lacking-native/ui"
	"github.com/mokiat/lacking/storage/chunked"
)

const assetsDir = "./assets"

func runApplication() error {
	storage, err := chunked.NewFileStorage(assetsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	assets := os.DirFS(assetsDir)

	controller := createController(storage, assets, nativegame.NewShaderCollection(), nativegame.NewShaderBuilder(), nativeui.NewShaderCollection())

	cfg := nativeapp.NewConfig("Orbit Viewer", 1280, 800)
	cfg.SetFullscreen(false)
	cfg.SetMaximized(false)
	cfg.SetMinSize(640, 400)
	cfg.SetVSync(true)
	cfg.SetAudioEnabled(false)
	return nativeapp.Run(cfg, controller)
}
