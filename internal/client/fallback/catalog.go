// Package fallback holds the static built-in menu and the decision of when
// to show it instead of the retrieved categories.
package fallback

import (
	"strings"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/common"
)

// Placeholder values used when an item has no image or description.
const (
	PlaceholderImage       = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c"
	PlaceholderDescription = "Deliciosa opción disponible"
)

// Item is one menu entry of the static catalog.
type Item struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Image       string
}

// Section is a named, ordered list of items.
type Section struct {
	Name  string
	Items []Item
}

// Catalog is the static menu: an ordered list of sections.
type Catalog []Section

// Default returns the built-in Mikuna menu. Every call returns a fresh copy.
func Default() Catalog {
	return Catalog{
		{
			Name: "Desayunos",
			Items: []Item{
				{ID: 1, Name: "Desayuno Amazónico", Description: "Huevos, plátano, yuca y café", Price: 8.50,
					Image: "https://images.unsplash.com/photo-1525351484163-7529414344d8"},
				{ID: 2, Name: "Tostadas Mikuna", Description: "Pan artesanal con mermelada de cacao", Price: 6.00,
					Image: "https://storage.googleapis.com/hostinger-horizons-assets-prod/37b870c6-b03e-42b3-bd10-1fca720a0822/3ff21d64d4a6558674b2f9f3e7d0d8c7.webp"},
				{ID: 3, Name: "Bowl de Açaí", Description: "Açaí con frutas tropicales y granola", Price: 9.00,
					Image: "https://images.unsplash.com/photo-1552332386-f8dd00dc2f85"},
			},
		},
		{
			Name: "Platos Principales",
			Items: []Item{
				{ID: 4, Name: "Pescado a la Plancha", Description: "Pescado fresco con vegetales amazónicos", Price: 15.00,
					Image: "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2"},
				{ID: 5, Name: "Pollo al Curry Verde", Description: "Pollo en salsa de hierbas amazónicas", Price: 13.50,
					Image: "https://storage.googleapis.com/hostinger-horizons-assets-prod/37b870c6-b03e-42b3-bd10-1fca720a0822/b70baf0e9e392a93ce357385c4576c11.webp"},
				{ID: 6, Name: "Ensalada Tropical", Description: "Mix de hojas verdes con frutas exóticas", Price: 11.00,
					Image: "https://images.unsplash.com/photo-1540420773420-2850a42b2456"},
			},
		},
		{
			Name: "Cafés y Bebidas",
			Items: []Item{
				{ID: 7, Name: "Café Mikuna Especial", Description: "Blend exclusivo de granos amazónicos", Price: 4.50,
					Image: "https://storage.googleapis.com/hostinger-horizons-assets-prod/37b870c6-b03e-42b3-bd10-1fca720a0822/2efec85d3866e61cd8d0b6f60b037637.webp"},
				{ID: 8, Name: "Latte de Cacao", Description: "Espresso con leche y cacao orgánico", Price: 5.00,
					Image: "https://storage.googleapis.com/hostinger-horizons-assets-prod/37b870c6-b03e-42b3-bd10-1fca720a0822/db45ede3210a9165ac3ed3f3f84e3fe6.webp"},
				{ID: 9, Name: "Jugo Verde Detox", Description: "Espinaca, piña, apio y jengibre", Price: 6.50,
					Image: "https://storage.googleapis.com/hostinger-horizons-assets-prod/37b870c6-b03e-42b3-bd10-1fca720a0822/60dabba9302cc5226c42c1a4a6d685cf.webp"},
			},
		},
	}
}

// Names returns the section names in order.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for _, s := range c {
		out = append(out, s.Name)
	}
	return out
}

// Lookup finds a section by name, ignoring case and surrounding spaces.
func (c Catalog) Lookup(name string) (Section, error) {
	name = strings.TrimSpace(name)
	for _, s := range c {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Section{}, common.ErrorNotFound
}

// Clone returns a deep copy so callers can't modify a shared catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, s := range c {
		out[i] = Section{Name: s.Name, Items: append([]Item(nil), s.Items...)}
	}
	return out
}

// DisplayImage returns the item image or the placeholder.
func (it Item) DisplayImage() string {
	if it.Image == "" {
		return PlaceholderImage
	}
	return it.Image
}

// DisplayDescription returns the item description or the placeholder.
func (it Item) DisplayDescription() string {
	if it.Description == "" {
		return PlaceholderDescription
	}
	return it.Description
}
