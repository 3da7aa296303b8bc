package schema

import (
	"errors"
	"fmt"
)

type ResourceType string

const (
	ResourceTypeTexture ResourceType = "texture"
	ResourceTypeModel   ResourceType = "model"
)

// IsTexture reports whether items of this type go through the texture
// loading path. Every other type, known or not, is loaded as a model.
func (t ResourceType) IsTexture() bool {
	return t == ResourceTypeTexture
}

type ResourceItem struct {
	Name string       `json:"name"`
	Path string       `json:"path"`
	Type ResourceType `json:"type"`
}

type ResourceGroup struct {
	Name  string         `json:"name"`
	Items []ResourceItem `json:"items"`
}

var (
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyPath     = errors.New("empty path")
	ErrDuplicateName = errors.New("duplicate item name")
)

// Validate checks that the group and its items are named, that every item
// has a path and that item names are unique within a cache kind.
func (g *ResourceGroup) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("group: %w", ErrEmptyName)
	}
	textures := make(map[string]struct{})
	models := make(map[string]struct{})
	for i, item := range g.Items {
		if item.Name == "" {
			return fmt.Errorf("group %q item #%d: %w", g.Name, i, ErrEmptyName)
		}
		if item.Path == "" {
			return fmt.Errorf("group %q item %q: %w", g.Name, item.Name, ErrEmptyPath)
		}
		seen := models
		if item.Type.IsTexture() {
			seen = textures
		}
		if _, ok := seen[item.Name]; ok {
			return fmt.Errorf("group %q item %q: %w", g.Name, item.Name, ErrDuplicateName)
		}
		seen[item.Name] = struct{}{}
	}
	return nil
}
