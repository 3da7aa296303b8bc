//go:build !js

package ui

import "os"

// DebugEnv enables the flame graph on start when set.
const DebugEnv = "ORBIT_VIEWER_DEBUG"

func debugRequested() bool {
	return os.Getenv(DebugEnv) != ""
}

func initRouter(app *applicationComponent) {
}

func updateHash(view ViewName) {
}
