package stage

import (
	"context"

	"github.com/mokiat/lacking/game"

	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/schema"
)

// ModelFetcher loads model templates through an engine resource set.
type ModelFetcher struct {
	resourceSet *game.ResourceSet
}

var _ resources.Fetcher = (*ModelFetcher)(nil)

func NewModelFetcher(resourceSet *game.ResourceSet) *ModelFetcher {
	return &ModelFetcher{
		resourceSet: resourceSet,
	}
}

func (f *ModelFetcher) Fetch(ctx context.Context, item schema.ResourceItem) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var template *game.ModelTemplate
	if err := f.resourceSet.FetchResource(item.Path, &template).Wait(); err != nil {
		return nil, err
	}
	return template, nil
}
