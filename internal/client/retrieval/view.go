package retrieval

import (
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/fallback"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/services"
)

// Mode selects how a retrieval obtains categories.
type Mode int

const (
	// ModePaged loads a single server page.
	ModePaged Mode = iota
	// ModeAll aggregates every page.
	ModeAll
)

func (m Mode) String() string {
	if m == ModeAll {
		return "all"
	}
	return "paged"
}

// View is an immutable snapshot of the retrieval state. A new View replaces
// the previous one on every transition.
type View struct {
	Status     models.Status
	Mode       Mode
	Page       int
	Loading    bool
	Categories []models.Category
	// Pagination is set only after a paged retrieval that returned a page.
	Pagination *models.Pagination
	Fallback   bool
	Catalog    fallback.Catalog
	// Error holds the failure message when Status is error.
	Error     string
	Message   string
	Truncated bool
}

// HasCategories reports whether real categories are exposed.
func (v View) HasCategories() bool {
	return !v.Fallback && len(v.Categories) > 0
}

// IsEmpty reports a completed retrieval that found nothing.
func (v View) IsEmpty() bool {
	return v.Status == models.StatusEmpty
}

func (v View) HasError() bool {
	return v.Status == models.StatusError
}

func (v View) HasNextPage() bool {
	return v.Pagination != nil && v.Pagination.HasNextPage
}

func (v View) HasPrevPage() bool {
	return v.Pagination != nil && v.Pagination.HasPrevPage
}

// TotalCategories is the server-reported total in paged mode, otherwise the
// number of exposed categories.
func (v View) TotalCategories() int {
	if v.Pagination != nil && v.Pagination.Total > 0 {
		return v.Pagination.Total
	}
	return len(v.Categories)
}

// CategoryByID finds an exposed category.
func (v View) CategoryByID(id models.CategoryID) (models.Category, bool) {
	for _, c := range v.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// ActiveCategories returns the exposed categories that are active.
func (v View) ActiveCategories() []models.Category {
	return services.FilterActive(v.Categories)
}
