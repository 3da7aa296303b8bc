package ui

import (
	"log/slog"

	"github.com/mokiat/lacking/game"

	"github.com/nobonobo/orbit-viewer/host/session"
)

type GlobalState struct {
	Engine      *game.Engine
	ResourceSet *game.ResourceSet
	Host        *session.Host
	Logger      *slog.Logger
}
