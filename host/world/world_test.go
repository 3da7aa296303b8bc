package world

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/nobonobo/orbit-viewer/host/assets"
	"github.com/nobonobo/orbit-viewer/host/config"
	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/schema"
)

type fakeLoader struct {
	mu      sync.Mutex
	groups  []string
	release chan struct{}
	err     error
	meshes  map[string]resources.ResourceData
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		meshes: make(map[string]resources.ResourceData),
	}
}

func (l *fakeLoader) LoadResourceGroup(ctx context.Context, group *schema.ResourceGroup) error {
	l.mu.Lock()
	l.groups = append(l.groups, group.Name)
	l.mu.Unlock()
	if l.release != nil {
		<-l.release
	}
	if l.err != nil {
		return l.err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range group.Items {
		if !item.Type.IsTexture() {
			l.meshes[item.Name] = resources.ResourceData{Name: item.Name, Type: item.Type, Data: item.Path}
		}
	}
	return nil
}

func (l *fakeLoader) WaitResourceGroup(ctx context.Context, name string) error {
	return l.err
}

func (l *fakeLoader) GetMesh(name string) (resources.ResourceData, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	data, ok := l.meshes[name]
	return data, ok
}

func (l *fakeLoader) GetTexture(name string) (resources.ResourceData, bool) {
	return resources.ResourceData{}, false
}

func (l *fakeLoader) requestedGroups() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.groups...)
}

type fakePresenter struct {
	cameras int
	lights  int
	spawned []string
	fail    error
}

func (p *fakePresenter) PresentCamera(*Camera) { p.cameras++ }
func (p *fakePresenter) PresentLights(LightRig) { p.lights++ }
func (p *fakePresenter) Spawn(object Object, mesh resources.ResourceData) error {
	p.spawned = append(p.spawned, object.Name+"="+mesh.Name)
	return p.fail
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func waitReady(t *testing.T, w *World) {
	t.Helper()
	select {
	case <-w.AssetsReady():
	case <-time.After(5 * time.Second):
		t.Fatal("assets never became ready")
	}
}

func TestNewBuildsScene(t *testing.T) {
	loader := newFakeLoader()
	w := New(config.Configuration{PixelRatio: 1, Width: 1600, Height: 900}, loader, WithLogger(quietLogger))
	waitReady(t, w)

	cam := w.Camera()
	if got := cam.FoV.Degrees(); math.Abs(got-60) > 1e-9 {
		t.Errorf("FoV = %v", got)
	}
	if cam.Near != 0.1 || cam.Far != 100 {
		t.Errorf("clip = %v..%v", cam.Near, cam.Far)
	}
	if cam.Aspect != 1600.0/900.0 {
		t.Errorf("Aspect = %v", cam.Aspect)
	}
	if cam.Position.Y != 3 || cam.Position.Z != 3 {
		t.Errorf("Position = %+v", cam.Position)
	}
	if !w.Controls().EnableDamping {
		t.Error("damping disabled")
	}

	rig := w.Lights()
	if !rig.Directional.CastShadow {
		t.Error("directional light does not cast shadows")
	}
	if rig.Directional.Shadow.MapWidth != 2048 || rig.Directional.Shadow.MapHeight != 2048 {
		t.Errorf("shadow map = %dx%d", rig.Directional.Shadow.MapWidth, rig.Directional.Shadow.MapHeight)
	}
	if rig.Directional.Shadow.Bias != -0.000008 {
		t.Errorf("shadow bias = %v", rig.Directional.Shadow.Bias)
	}

	if groups := loader.requestedGroups(); len(groups) != 1 || groups[0] != assets.All.Name {
		t.Fatalf("requested groups = %v", groups)
	}
}

func TestNewDoesNotWaitForAssets(t *testing.T) {
	loader := newFakeLoader()
	loader.release = make(chan struct{})
	w := New(config.Configuration{PixelRatio: 1, Width: 10, Height: 10}, loader, WithLogger(quietLogger))

	select {
	case <-w.AssetsReady():
		t.Fatal("ready before loader finished")
	default:
	}

	p := &fakePresenter{}
	w.Update()
	w.Present(p)
	if len(p.spawned) != 0 {
		t.Fatalf("spawned before ready: %v", p.spawned)
	}

	close(loader.release)
	waitReady(t, w)
	w.Present(p)
	if len(p.spawned) != 2 {
		t.Fatalf("spawned = %v", p.spawned)
	}
}

func TestResizeUsesLatestDimensions(t *testing.T) {
	w := New(config.Configuration{PixelRatio: 1, Width: 100, Height: 100}, newFakeLoader(), WithLogger(quietLogger))
	waitReady(t, w)

	sizes := [][2]int{{800, 600}, {1920, 1080}, {300, 900}, {1024, 768}}
	for _, size := range sizes {
		w.Resize(config.Configuration{PixelRatio: 2, Width: size[0], Height: size[1]})
	}
	want := 1024.0 / 768.0
	cam := w.Camera()
	if cam.Aspect != want {
		t.Fatalf("Aspect = %v, want %v", cam.Aspect, want)
	}
	proj := cam.Projection()
	if math.Abs(proj.M11*want-proj.M22) > 1e-9 {
		t.Fatalf("projection not updated: M11=%v M22=%v", proj.M11, proj.M22)
	}
}

func TestResizeLeavesCameraPlacement(t *testing.T) {
	w := New(config.Configuration{PixelRatio: 1, Width: 100, Height: 100}, newFakeLoader(), WithLogger(quietLogger))
	waitReady(t, w)
	before := w.Camera().Position
	w.Resize(config.Configuration{PixelRatio: 1, Width: 50, Height: 100})
	if w.Camera().Position != before {
		t.Fatal("resize moved the camera")
	}
}

func TestPresentSpawnsOnce(t *testing.T) {
	w := New(config.Configuration{PixelRatio: 1, Width: 100, Height: 100}, newFakeLoader(), WithLogger(quietLogger))
	waitReady(t, w)

	p := &fakePresenter{}
	for range 3 {
		w.Present(p)
	}
	if p.cameras != 3 {
		t.Errorf("cameras presented %d times", p.cameras)
	}
	if p.lights != 1 {
		t.Errorf("lights presented %d times", p.lights)
	}
	want := []string{"placeholder=" + assets.PlaceholderModel, "lights=" + assets.LightRigModel}
	if len(p.spawned) != len(want) {
		t.Fatalf("spawned = %v", p.spawned)
	}
	for i := range want {
		if p.spawned[i] != want[i] {
			t.Errorf("spawned[%d] = %q, want %q", i, p.spawned[i], want[i])
		}
	}
}

func TestAssetFailureIsReported(t *testing.T) {
	boom := errors.New("boom")
	loader := newFakeLoader()
	loader.err = boom
	w := New(config.Configuration{PixelRatio: 1, Width: 100, Height: 100}, loader, WithLogger(quietLogger))
	waitReady(t, w)

	if !errors.Is(w.AssetsErr(), boom) {
		t.Fatalf("AssetsErr() = %v", w.AssetsErr())
	}

	got := make(chan error, 1)
	w.OnAssetsReady(func(err error) { got <- err })
	if err := <-got; !errors.Is(err, boom) {
		t.Fatalf("listener got %v", err)
	}

	p := &fakePresenter{}
	w.Present(p)
	if len(p.spawned) != 0 {
		t.Fatalf("spawned without meshes: %v", p.spawned)
	}
}

func TestOnAssetsReadyBeforeCompletion(t *testing.T) {
	loader := newFakeLoader()
	loader.release = make(chan struct{})
	w := New(config.Configuration{PixelRatio: 1, Width: 100, Height: 100}, loader, WithLogger(quietLogger))

	got := make(chan error, 1)
	w.OnAssetsReady(func(err error) { got <- err })
	close(loader.release)

	select {
	case err := <-got:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("listener never called")
	}
}

func TestWithGroup(t *testing.T) {
	loader := newFakeLoader()
	group := &schema.ResourceGroup{Name: "custom"}
	w := New(config.Configuration{PixelRatio: 1, Width: 1, Height: 1}, loader, WithGroup(group), WithLogger(quietLogger))
	waitReady(t, w)
	if groups := loader.requestedGroups(); len(groups) != 1 || groups[0] != "custom" {
		t.Fatalf("requested groups = %v", groups)
	}
}

func TestSecondWorldWaitsForSharedLoad(t *testing.T) {
	release := make(chan struct{})
	fetch := resources.FetcherFunc(func(ctx context.Context, item schema.ResourceItem) (any, error) {
		<-release
		return item.Path, nil
	})
	loader := resources.NewLoader(fetch, fetch, resources.WithLogger(quietLogger))
	cfg := config.Configuration{PixelRatio: 1, Width: 100, Height: 100}

	first := New(cfg, loader, WithLogger(quietLogger))
	for loader.Stats().Requested == 0 {
	}
	second := New(cfg, loader, WithLogger(quietLogger))

	p := &fakePresenter{}
	select {
	case <-second.AssetsReady():
		t.Fatal("second world ready before the shared load finished")
	case <-time.After(20 * time.Millisecond):
	}
	second.Present(p)
	if len(p.spawned) != 0 {
		t.Fatalf("spawned before the shared load finished: %v", p.spawned)
	}

	close(release)
	waitReady(t, first)
	waitReady(t, second)
	if err := second.AssetsErr(); err != nil {
		t.Fatal(err)
	}
	if _, ok := loader.GetMesh(assets.PlaceholderModel); !ok {
		t.Fatal("placeholder not cached when the second world became ready")
	}
	second.Present(p)
	if len(p.spawned) != 2 {
		t.Fatalf("spawned = %v", p.spawned)
	}
}
