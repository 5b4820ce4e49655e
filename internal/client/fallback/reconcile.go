package fallback

import (
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/services"
)

// Decision is the outcome of Reconcile. Exactly one of Categories and
// Catalog is populated: Categories when real data is shown, Catalog when
// Fallback is set.
type Decision struct {
	Status     models.Status
	Fallback   bool
	Categories []models.Category
	Catalog    Catalog
	Message    string
}

// Reconcile decides what to expose for an aggregation result.
//
//   - success with categories left after the optional active filter: success
//   - success with nothing left: empty, static catalog
//   - failure: error, static catalog, failure message kept
//
// It holds no state; catalog is passed in as a constant.
func Reconcile(res models.CollectionResult, catalog Catalog, activeOnly bool) Decision {
	if !res.Success {
		return Decision{
			Status:   models.StatusError,
			Fallback: true,
			Catalog:  catalog,
			Message:  res.Message,
		}
	}

	categories := res.Categories
	if activeOnly {
		categories = services.FilterActive(categories)
	}

	if len(categories) == 0 {
		return Decision{
			Status:   models.StatusEmpty,
			Fallback: true,
			Catalog:  catalog,
			Message:  res.Message,
		}
	}

	return Decision{
		Status:     models.StatusSuccess,
		Categories: categories,
		Message:    res.Message,
	}
}
