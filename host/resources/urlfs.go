package resources

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"time"
)

// URLFS is a read-only file system backed by HTTP GET requests relative to a
// base URL. In the browser build the requests go through the fetch API.
type URLFS struct {
	base   *url.URL
	client *http.Client
}

var _ fs.FS = (*URLFS)(nil)

func NewURLFS(base string) (*URLFS, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	return &URLFS{
		base:   u,
		client: http.DefaultClient,
	}, nil
}

func (f *URLFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	ref, err := url.Parse(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	resp, err := f.client.Get(f.base.ResolveReference(ref).String())
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return &urlFile{
		name: name,
		body: resp.Body,
		size: resp.ContentLength,
	}, nil
}

type urlFile struct {
	name string
	body io.ReadCloser
	size int64
}

func (f *urlFile) Read(p []byte) (int, error) {
	return f.body.Read(p)
}

func (f *urlFile) Close() error {
	return f.body.Close()
}

func (f *urlFile) Stat() (fs.FileInfo, error) {
	return urlFileInfo{f}, nil
}

type urlFileInfo struct {
	file *urlFile
}

func (i urlFileInfo) Name() string       { return path.Base(i.file.name) }
func (i urlFileInfo) Size() int64        { return max(i.file.size, 0) }
func (i urlFileInfo) Mode() fs.FileMode  { return 0o444 }
func (i urlFileInfo) ModTime() time.Time { return time.Time{} }
func (i urlFileInfo) IsDir() bool        { return false }
func (i urlFileInfo) Sys() any           { return nil }
