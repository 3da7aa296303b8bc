package resources

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/nobonobo/orbit-viewer/schema"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImageFetcher(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/ground.png": {Data: encodePNG(t, 4, 2)},
		"textures/broken.png": {Data: []byte("not an image")},
	}
	fetcher := NewImageFetcher(fsys)
	ctx := context.Background()

	t.Run("decodes", func(t *testing.T) {
		data, err := fetcher.Fetch(ctx, schema.ResourceItem{Name: "ground", Path: "/textures/ground.png", Type: schema.ResourceTypeTexture})
		if err != nil {
			t.Fatal(err)
		}
		texture, ok := data.(*Texture)
		if !ok {
			t.Fatalf("data is %T", data)
		}
		if w, h := texture.Size(); w != 4 || h != 2 {
			t.Fatalf("size = %dx%d", w, h)
		}
		if texture.Format != "png" {
			t.Fatalf("format = %q", texture.Format)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, schema.ResourceItem{Name: "x", Path: "textures/missing.png"})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("corrupt", func(t *testing.T) {
		if _, err := fetcher.Fetch(ctx, schema.ResourceItem{Name: "x", Path: "./textures/broken.png"}); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := fetcher.Fetch(cancelled, schema.ResourceItem{Name: "ground", Path: "textures/ground.png"}); !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestURLFS(t *testing.T) {
	payload := encodePNG(t, 3, 3)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/assets/textures/ground.png":
			w.Write(payload)
		case "/assets/textures/secret.png":
			w.WriteHeader(http.StatusForbidden)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fsys, err := NewURLFS(server.URL + "/assets/")
	if err != nil {
		t.Fatal(err)
	}

	data, err := NewImageFetcher(fsys).Fetch(context.Background(), schema.ResourceItem{Name: "ground", Path: "textures/ground.png"})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := data.(*Texture).Size(); w != 3 || h != 3 {
		t.Fatalf("size = %dx%d", w, h)
	}

	if _, err := fsys.Open("textures/missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing: err = %v", err)
	}
	if _, err := fsys.Open("textures/secret.png"); err == nil {
		t.Fatal("forbidden: expected error")
	}
	if _, err := fsys.Open("../escape.png"); !errors.Is(err, fs.ErrInvalid) {
		t.Fatalf("invalid: err = %v", err)
	}
}
