// Package resources implements the deduplicating resource loader. Groups of
// items are fetched concurrently and cached by name for the lifetime of the
// loader.
package resources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nobonobo/orbit-viewer/schema"
)

var (
	ErrDisposed     = errors.New("resource loader disposed")
	ErrUnknownGroup = errors.New("resource group was never requested")
)

// ResourceData is a loaded item. Data is an opaque handle owned by the
// graphics engine.
type ResourceData struct {
	Name string
	Type schema.ResourceType
	Data any
}

type Fetcher interface {
	Fetch(ctx context.Context, item schema.ResourceItem) (any, error)
}

type FetcherFunc func(ctx context.Context, item schema.ResourceItem) (any, error)

func (f FetcherFunc) Fetch(ctx context.Context, item schema.ResourceItem) (any, error) {
	return f(ctx, item)
}

type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

type Loader struct {
	logger *slog.Logger

	models   Fetcher
	textures Fetcher

	mu        sync.Mutex
	meshes    map[string]ResourceData
	images    map[string]ResourceData
	requested map[string]*groupLoad
	disposed  bool
}

// groupLoad tracks one requested group. done is closed once every item has
// finished; err is set before that.
type groupLoad struct {
	done chan struct{}
	err  error
}

// NewLoader creates a loader that fetches texture items through textures and
// every other item through models.
func NewLoader(models, textures Fetcher, opts ...Option) *Loader {
	l := &Loader{
		logger:    slog.Default(),
		models:    models,
		textures:  textures,
		meshes:    make(map[string]ResourceData),
		images:    make(map[string]ResourceData),
		requested: make(map[string]*groupLoad),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) GetMesh(name string) (ResourceData, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	data, ok := l.meshes[name]
	return data, ok
}

func (l *Loader) GetTexture(name string) (ResourceData, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	data, ok := l.images[name]
	return data, ok
}

// LoadResourceGroup fetches every item of the group and blocks until all of
// them have finished. A nil group or a group whose name was requested before
// returns nil at once without fetching anything; use WaitResourceGroup to
// wait for such a group.
//
// Items are independent: a failed item does not cancel the others, and
// items that succeeded stay cached. The first failure is returned.
func (l *Loader) LoadResourceGroup(ctx context.Context, group *schema.ResourceGroup) error {
	if group == nil {
		return nil
	}
	logger := l.logger.With(slog.String("group", group.Name))

	l.mu.Lock()
	if _, ok := l.requested[group.Name]; ok {
		l.mu.Unlock()
		logger.Debug("Group already requested")
		return nil
	}
	if l.disposed {
		l.mu.Unlock()
		return ErrDisposed
	}
	load := &groupLoad{done: make(chan struct{})}
	l.requested[group.Name] = load
	l.mu.Unlock()

	logger.Info("Loading group", slog.Int("items", len(group.Items)))

	var g errgroup.Group
	for _, item := range group.Items {
		g.Go(func() error {
			if err := l.loadItem(ctx, logger, item); err != nil {
				return fmt.Errorf("failed to load %s %q from %q: %w", item.Type, item.Name, item.Path, err)
			}
			return nil
		})
	}
	err := g.Wait()
	load.err = err
	close(load.done)

	if err != nil {
		logger.Error("Group failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Group loaded")
	return nil
}

// WaitResourceGroup blocks until the named group has finished loading and
// returns the result of that load. It works for whichever caller started the
// load, so a caller that got the duplicate no-op can still wait for the
// assets to be cached.
func (l *Loader) WaitResourceGroup(ctx context.Context, name string) error {
	l.mu.Lock()
	load, ok := l.requested[name]
	l.mu.Unlock()
	if !ok {
		return fmt.Errorf("group %q: %w", name, ErrUnknownGroup)
	}
	select {
	case <-load.done:
		return load.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) loadItem(ctx context.Context, logger *slog.Logger, item schema.ResourceItem) error {
	fetcher, cache := l.models, l.meshes
	if item.Type.IsTexture() {
		fetcher, cache = l.textures, l.images
	}
	data, err := fetcher.Fetch(ctx, item)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := cache[item.Name]; ok {
		// Another group declared the same name first.
		return nil
	}
	cache[item.Name] = ResourceData{
		Name: item.Name,
		Type: item.Type,
		Data: data,
	}
	logger.Debug("Item loaded",
		slog.String("item", item.Name),
		slog.String("type", string(item.Type)),
	)
	return nil
}

// Dispose stops the loader from accepting new groups. Groups requested
// before keep their silent no-op and cached entries remain readable.
func (l *Loader) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disposed = true
}

func (l *Loader) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}

type Stats struct {
	Meshes    int
	Textures  int
	Requested int
}

func (l *Loader) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		Meshes:    len(l.meshes),
		Textures:  len(l.images),
		Requested: len(l.requested),
	}
}
