package main

import (
	"log/slog"
	"os"

	"github.com/mokiat/lacking-studio/studio"
	"github.com/mokiat/lacking/game/asset/conv"
	"github.com/mokiat/lacking/game/asset/dsl"

	"github.com/nobonobo/orbit-viewer/host/assets"
)

var _ = dsl.Use(
	conv.NewModelConverter(),
)

func main() {
	slog.Info("Authoring assets", slog.Int("items", len(assets.All.Items)))
	if err := studio.Run(); err != nil {
		slog.Error("Error",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}
