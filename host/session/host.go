// Package session runs the viewer: it composes configuration, render
// surface and world, drives the frame loop and dispatches resizes.
package session

import (
	"log/slog"

	"github.com/nobonobo/orbit-viewer/host/lifecycle"
	"github.com/nobonobo/orbit-viewer/host/resources"
)

type HostOption func(*Host)

func WithLogger(logger *slog.Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

// Host owns the single live session and the single live resource loader.
// The process entry creates one Host and hands it to whatever needs a
// session.
type Host struct {
	logger    *slog.Logger
	newLoader func() *resources.Loader

	sessions lifecycle.Slot[*Session]
	loaders  lifecycle.Slot[*resources.Loader]
}

func NewHost(newLoader func() *resources.Loader, opts ...HostOption) *Host {
	h := &Host{
		logger:    slog.Default(),
		newLoader: newLoader,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Loader returns the live resource loader, creating it if needed.
func (h *Host) Loader() *resources.Loader {
	loader, created, _ := h.loaders.Acquire(func() (*resources.Loader, error) {
		return h.newLoader(), nil
	})
	if created {
		h.logger.Debug("Resource loader created")
	}
	return loader
}

// DisposeLoader disposes the live loader and frees its slot. The next call
// to Loader creates a fresh one with empty caches.
func (h *Host) DisposeLoader() {
	loader, ok := h.loaders.Get()
	if !ok {
		return
	}
	loader.Dispose()
	h.loaders.Release(func(l *resources.Loader) bool { return l == loader })
}

// Start returns the running session, or builds a new one from env if there
// is none. A running session is returned unchanged and env is ignored.
func (h *Host) Start(env Environment) (*Session, error) {
	s, created, err := h.sessions.Acquire(func() (*Session, error) {
		return newSession(h, env)
	})
	if err != nil {
		h.logger.Error("Failed to start session", slog.String("error", err.Error()))
		return nil, err
	}
	if !created {
		h.logger.Debug("Session already running", slog.String("session", s.ID()))
	}
	return s, nil
}

// Session returns the running session, if any.
func (h *Host) Session() (*Session, bool) {
	return h.sessions.Get()
}

func (h *Host) release(s *Session) {
	h.sessions.Release(func(live *Session) bool { return live == s })
}
