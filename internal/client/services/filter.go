package services

import "github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"

// FilterActive returns the active categories of in, in input order. It is
// pure and idempotent; the input slice is not modified.
func FilterActive(in []models.Category) []models.Category {
	out := make([]models.Category, 0, len(in))
	for _, c := range in {
		if c.Active() {
			out = append(out, c)
		}
	}
	return out
}
