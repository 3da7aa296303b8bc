package main

import (
	"io/fs"
	"log/slog"

	"github.com/mokiat/lacking/app"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/host/stage"
	gameui "github.com/nobonobo/orbit-viewer/host/ui"
)

// createController layers the UI over the game. assets serves both the UI
// locator and the texture fetcher. The engine stages follow the default
// pipeline.
func createController(storage chunked.Storage, assets fs.FS, gameShaders graphics.ShaderCollection, gameBuilder graphics.ShaderBuilder, uiShaders ui.ShaderCollection) app.Controller {
	locator := ui.WrappedLocator(resource.NewFSLocator(assets))
	textures := resources.NewImageFetcher(assets)

	pipeline := stage.DefaultPipeline()
	for _, effect := range pipeline.Unsupported {
		slog.Warn("Effect has no engine stage", slog.String("effect", effect))
	}

	gameController := game.NewController(storage, gameShaders, gameBuilder)
	gameController.UseGraphicsOptions(pipeline.Options()...)
	uiController := ui.NewController(locator, uiShaders, func(w *ui.Window) {
		gameui.BootstrapApplication(w, gameController, textures)
	})

	return app.NewLayeredController(gameController, uiController)
}
