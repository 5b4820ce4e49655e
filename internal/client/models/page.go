package models

// Pagination is the metadata of one server page.
//
// HasNextPage and HasPrevPage are derived from the presence of the
// corresponding locators and are never computed independently.
type Pagination struct {
	CurrentPage  int
	LastPage     int
	PerPage      int
	Total        int
	From         int
	To           int
	HasNextPage  bool
	HasPrevPage  bool
	NextPageURL  string
	PrevPageURL  string
	FirstPageURL string
	LastPageURL  string
	Links        []any
}

// Page is one server-paginated slice of categories.
type Page struct {
	Categories []Category
	Pagination Pagination
}

// Len returns the number of categories on the page.
func (p Page) Len() int {
	return len(p.Categories)
}
