package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/fallback"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/retrieval"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/services"
	"golang.org/x/term"
)

const defaultWidth = 80

// terminalWidth is a test seam for term.GetSize.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func truncate(s string, max int) string {
	if max <= 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func renderCategory(c models.Category, width int) string {
	line := fmt.Sprintf("  [%s] %s", c.ID, c.Name)
	if !c.Active() {
		line += " (inactive)"
	}
	if blurb := c.Blurb(); blurb != "" {
		line += " - " + blurb
	}
	return truncate(line, width)
}

func renderCatalog(catalog fallback.Catalog, width int) string {
	var b strings.Builder
	for i, s := range catalog {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Name)
		b.WriteString("\n")
		if len(s.Items) == 0 {
			b.WriteString("  (no items available)\n")
			continue
		}
		for _, it := range s.Items {
			fmt.Fprintf(&b, "  #%d %s  $%.2f\n", it.ID, it.Name, it.Price)
			b.WriteString(truncate("     "+it.DisplayDescription(), width))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPagination(p *models.Pagination) string {
	if p == nil {
		return ""
	}
	s := fmt.Sprintf("page %d of %d (%d total)", p.CurrentPage, p.LastPage, p.Total)
	var nav []string
	if p.HasPrevPage {
		nav = append(nav, "(p)rev")
	}
	if p.HasNextPage {
		nav = append(nav, "(n)ext")
	}
	if len(nav) > 0 {
		s += " - " + strings.Join(nav, ", ")
	}
	return s
}

// renderView formats a retrieval snapshot for the terminal.
func renderView(v retrieval.View, width int) string {
	switch v.Status {
	case models.StatusIdle:
		return "No categories loaded. Type 'refetch', 'all' or 'page N'."
	case models.StatusLoading:
		return "Loading categories..."
	}

	var b strings.Builder
	if v.Fallback {
		b.WriteString("Using local menu.")
		if v.Error != "" {
			b.WriteString(" Error: " + v.Error)
		} else if v.Message != "" {
			b.WriteString(" " + v.Message)
		}
		b.WriteString(" Type 'refetch' to reconnect.\n")
		b.WriteString(renderCatalog(v.Catalog, width))
		return b.String()
	}

	fmt.Fprintf(&b, "%d categories", len(v.Categories))
	if v.Truncated {
		b.WriteString(" (page limit reached, list may be incomplete)")
	}
	b.WriteString("\n")
	for _, c := range v.Categories {
		b.WriteString(renderCategory(c, width))
		b.WriteString("\n")
	}
	if p := renderPagination(v.Pagination); p != "" {
		b.WriteString(p)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderConnection(r services.ConnectionReport) string {
	state := "unreachable"
	if r.Reachable {
		state = "reachable"
	}
	s := fmt.Sprintf("%s: %s in %s", r.Endpoint, state, r.Latency.Round(time.Millisecond))
	if r.DataReceived {
		s += fmt.Sprintf(", %d categories on first page", r.CategoriesFound)
	}
	if r.Message != "" {
		s += " (" + r.Message + ")"
	}
	return s
}

func renderStatus(v retrieval.View, mode Mode) string {
	s := fmt.Sprintf("status=%s mode=%s", v.Status, v.Mode)
	if v.Mode == retrieval.ModePaged && v.Status != models.StatusIdle {
		s += fmt.Sprintf(" page=%d", v.Page)
	}
	s += fmt.Sprintf(" categories=%d total=%d fallback=%t", len(v.Categories), v.TotalCategories(), v.Fallback)
	if mode != "" {
		s += " connection=" + string(mode)
	}
	if v.Message != "" {
		s += fmt.Sprintf(" message=%q", v.Message)
	}
	return s
}
