package resources

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nobonobo/orbit-viewer/schema"
)

// Texture is the decoded form of a texture item.
type Texture struct {
	Image  image.Image
	Format string
}

func (t *Texture) Size() (int, int) {
	bounds := t.Image.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// ImageFetcher decodes texture items from a file system. PNG, JPEG, WebP,
// BMP and TIFF are supported.
type ImageFetcher struct {
	fsys fs.FS
}

func NewImageFetcher(fsys fs.FS) *ImageFetcher {
	return &ImageFetcher{
		fsys: fsys,
	}
}

func (f *ImageFetcher) Fetch(ctx context.Context, item schema.ResourceItem) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := f.fsys.Open(cleanPath(item.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &Texture{
		Image:  img,
		Format: format,
	}, nil
}

// cleanPath turns a manifest locator into an io/fs path.
func cleanPath(path string) string {
	return strings.TrimPrefix(strings.TrimPrefix(path, "./"), "/")
}
