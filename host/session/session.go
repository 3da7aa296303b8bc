package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/nobonobo/orbit-viewer/host/config"
	"github.com/nobonobo/orbit-viewer/host/render"
	"github.com/nobonobo/orbit-viewer/host/world"
)

var ErrIncompleteEnvironment = errors.New("incomplete environment")

type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Session struct {
	id     string
	host   *Host
	env    Environment
	logger *slog.Logger

	mu                sync.Mutex
	state             State
	cfg               config.Configuration
	cancelFrame       CancelFunc
	unsubscribeResize func()
	frames            uint64

	renderer *render.Renderer
	world    *world.World
}

func newSession(host *Host, env Environment) (*Session, error) {
	if env.Viewport == nil || env.Frames == nil || env.Resizes == nil {
		return nil, ErrIncompleteEnvironment
	}

	s := &Session{
		id:    newSessionID(),
		host:  host,
		env:   env,
		state: StateUninitialized,
	}
	s.logger = host.logger.With(slog.String("session", s.id))

	s.cfg = config.Compute(env.Viewport)

	renderer, err := render.New(env.Surfaces, s.cfg, render.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	s.unsubscribeResize = env.Resizes.OnResize(s.Resize)

	s.world = world.New(s.cfg, host.Loader(), world.WithLogger(s.logger))
	s.renderer.InitComposer(s.world)

	s.mu.Lock()
	s.state = StateRunning
	s.scheduleFrame()
	s.mu.Unlock()

	s.logger.Info("Session started",
		slog.Int("width", s.cfg.Width),
		slog.Int("height", s.cfg.Height),
		slog.Float64("pixel_ratio", s.cfg.PixelRatio),
	)
	return s, nil
}

func newSessionID() string {
	uid, err := uuid.NewV6()
	if err != nil {
		return uuid.NewString()
	}
	return uid.String()
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Configuration returns the latest configuration snapshot.
func (s *Session) Configuration() config.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Session) World() *world.World {
	return s.world
}

func (s *Session) Renderer() *render.Renderer {
	return s.renderer
}

// Frames returns how many frames the loop has run.
func (s *Session) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// scheduleFrame must be called with s.mu held.
func (s *Session) scheduleFrame() {
	s.cancelFrame = s.env.Frames.RequestFrame(s.update)
}

func (s *Session) update() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.cancelFrame = nil
	s.mu.Unlock()

	// The controls move the camera before the frame is composed.
	s.world.Update()
	if s.env.Presenter != nil {
		s.world.Present(s.env.Presenter)
	}
	if err := s.renderer.Update(); err != nil {
		s.logger.Error("Failed to render frame", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames++
	if s.state == StateRunning {
		s.scheduleFrame()
	}
}

// Resize recomputes the configuration and propagates it to the world and
// then the renderer.
func (s *Session) Resize() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.cfg = config.Compute(s.env.Viewport)
	cfg := s.cfg
	s.mu.Unlock()

	s.world.Resize(cfg)
	s.renderer.Resize(cfg)
	s.logger.Debug("Resized",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Float64("pixel_ratio", cfg.PixelRatio),
	)
}

// Dispose stops the frame loop before anything else, so no frame runs
// after it returns, then frees the host's session slot. Further calls are
// no-ops.
func (s *Session) Dispose() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.state = StateDisposed
	cancel := s.cancelFrame
	unsubscribe := s.unsubscribeResize
	s.cancelFrame = nil
	s.unsubscribeResize = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if unsubscribe != nil {
		unsubscribe()
	}
	s.host.release(s)
	s.logger.Info("Session disposed")
}
