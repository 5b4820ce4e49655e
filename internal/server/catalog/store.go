// Package catalog implements the development catalog endpoint: an
// in-memory category store served over the envelope wire protocol.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
)

// Store is an in-memory, ordered category list.
type Store struct {
	mu         sync.RWMutex
	categories []models.Category
}

func NewStore(categories []models.Category) *Store {
	return &Store{categories: append([]models.Category(nil), categories...)}
}

// Replace swaps the whole catalog.
func (s *Store) Replace(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), categories...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories)
}

// Slice is one page of the store.
type Slice struct {
	Items    []models.Category
	Total    int
	LastPage int
	// From and To are 1-based positions of the first and last item, zero
	// when the page is empty.
	From, To int
}

// Page returns page (1-based) of size perPage. A page past the end is empty.
func (s *Store) Page(page, perPage int) Slice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.categories)
	size := perPage
	if size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	last := (total + size - 1) / size
	if last < 1 {
		last = 1
	}

	if page < 1 || page > last || total == 0 {
		return Slice{Items: []models.Category{}, Total: total, LastPage: last}
	}
	start := (page - 1) * size
	end := min(start+size, total)

	return Slice{
		Items:    append([]models.Category(nil), s.categories[start:end]...),
		Total:    total,
		LastPage: last,
		From:     start + 1,
		To:       end,
	}
}

// LoadFixture reads a JSON array of category records.
func LoadFixture(path string) ([]models.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var out []models.Category
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return out, nil
}

// DefaultFixture is served when no fixture file is configured.
func DefaultFixture() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Desayunos", Description: "Desayunos tradicionales y amazónicos", IsActive: true},
		{ID: "2", Name: "Platos Principales", Description: "Platos fuertes con ingredientes de la región", IsActive: true},
		{ID: "3", Name: "Cafés y Bebidas", Summary: "Café de especialidad y bebidas naturales", IsActive: true},
		{ID: "4", Name: "Postres", Description: "Dulces de temporada", IsActive: false},
		{ID: "5", Name: "Piqueos", Description: "Para compartir", IsActive: true},
	}
}
