package cli

import (
	"context"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/fallback"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
)

// ItemSource supplies the menu items of a retrieved category. The catalog
// endpoint does not expose items, so the default source reports none.
type ItemSource interface {
	Items(ctx context.Context, c models.Category) ([]fallback.Item, error)
}

// NoItems is the ItemSource used when no item backend is configured.
type NoItems struct{}

func (NoItems) Items(context.Context, models.Category) ([]fallback.Item, error) {
	return nil, nil
}

// menuSections builds what the menu command shows: the static catalog in
// fallback mode, otherwise one section per exposed category.
func menuSections(ctx context.Context, categories []models.Category, catalog fallback.Catalog, useFallback bool, src ItemSource) (fallback.Catalog, error) {
	if useFallback {
		return catalog, nil
	}

	out := make(fallback.Catalog, 0, len(categories))
	for _, c := range categories {
		items, err := src.Items(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, fallback.Section{Name: c.Name, Items: items})
	}
	return out, nil
}
