package session

import (
	"sync"

	"github.com/nobonobo/orbit-viewer/host/config"
	"github.com/nobonobo/orbit-viewer/host/render"
	"github.com/nobonobo/orbit-viewer/host/world"
)

// CancelFunc cancels a scheduled frame. Calling it after the frame ran, or
// more than once, is a no-op.
type CancelFunc func()

// FrameScheduler is the per-frame callback facility of the host. fn runs
// once, on a later frame; never before RequestFrame returns.
type FrameScheduler interface {
	RequestFrame(fn func()) CancelFunc
}

// ResizeNotifier delivers viewport resize notifications.
type ResizeNotifier interface {
	OnResize(fn func()) (unsubscribe func())
}

// Environment is everything a session consumes from its host.
type Environment struct {
	Viewport config.Viewport
	Frames   FrameScheduler
	Resizes  ResizeNotifier
	Surfaces render.SurfaceProvider

	// Presenter mirrors the world into the engine scene. Optional.
	Presenter world.Presenter
}

// ResizeSignal is a ResizeNotifier fed by the caller through Notify.
type ResizeSignal struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

func (s *ResizeSignal) OnResize(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners == nil {
		s.listeners = make(map[int]func())
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Notify calls every registered listener.
func (s *ResizeSignal) Notify() {
	s.mu.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

func (s *ResizeSignal) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
