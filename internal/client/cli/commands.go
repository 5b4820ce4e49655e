package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/common"
)

// List prints the current snapshot.
func (a *App) List(ctx context.Context) error {
	printlnFn(renderView(a.retriever.View(), terminalWidth()))
	return nil
}

func (a *App) Next(ctx context.Context) error {
	v, ok := a.retriever.NextPage(ctx)
	if !ok {
		printlnFn("No next page")
		return nil
	}
	printlnFn(renderView(v, terminalWidth()))
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	v, ok := a.retriever.PrevPage(ctx)
	if !ok {
		printlnFn("No previous page")
		return nil
	}
	printlnFn(renderView(v, terminalWidth()))
	return nil
}

// GoTo loads page arg. Without paged data it starts paged mode at that page.
func (a *App) GoTo(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		printlnFn("Usage: page <n>, n >= 1")
		return common.ErrorInvalidPage
	}

	cur := a.retriever.View()
	if cur.Pagination == nil {
		printlnFn(renderView(a.retriever.Load(ctx, n), terminalWidth()))
		return nil
	}

	v, ok := a.retriever.GoToPage(ctx, n)
	if !ok {
		printlnFn(fmt.Sprintf("Page %d is out of range (1-%d)", n, cur.Pagination.LastPage))
		return common.ErrorInvalidPage
	}
	printlnFn(renderView(v, terminalWidth()))
	return nil
}

// All switches to the aggregated collection.
func (a *App) All(ctx context.Context) error {
	printlnFn(renderView(a.retriever.LoadAll(ctx), terminalWidth()))
	return nil
}

// Paged switches to paged mode at the configured initial page.
func (a *App) Paged(ctx context.Context) error {
	printlnFn(renderView(a.retriever.Load(ctx, a.config.InitialPage), terminalWidth()))
	return nil
}

// Active prints only the active categories of the current snapshot.
func (a *App) Active(ctx context.Context) error {
	v := a.retriever.View()
	if !v.HasCategories() {
		printlnFn(renderView(v, terminalWidth()))
		return nil
	}

	active := v.ActiveCategories()
	printlnFn(fmt.Sprintf("%d active categories found", len(active)))
	width := terminalWidth()
	for _, c := range active {
		printlnFn(renderCategory(c, width))
	}
	return nil
}

// Show prints one category of the current snapshot.
func (a *App) Show(ctx context.Context, arg string) error {
	id := strings.TrimSpace(arg)
	if id == "" {
		printlnFn("Usage: show <id>")
		return nil
	}

	c, ok := a.retriever.View().CategoryByID(models.CategoryID(id))
	if !ok {
		printlnFn("Category not found:", id)
		return common.ErrorNotFound
	}

	printlnFn(fmt.Sprintf("ID:          %s", c.ID))
	printlnFn(fmt.Sprintf("Name:        %s", c.Name))
	printlnFn(fmt.Sprintf("Active:      %t", c.Active()))
	if c.Description != "" {
		printlnFn(fmt.Sprintf("Description: %s", c.Description))
	}
	if c.Summary != "" {
		printlnFn(fmt.Sprintf("Summary:     %s", c.Summary))
	}
	if c.ImageURL != "" {
		printlnFn(fmt.Sprintf("Image:       %s", c.ImageURL))
	}
	return nil
}

// Menu prints the menu: the local catalog in fallback mode, otherwise the
// retrieved categories with the items supplied by the ItemSource.
func (a *App) Menu(ctx context.Context) error {
	v := a.retriever.View()
	if v.Status == models.StatusLoading || v.Status == models.StatusIdle {
		printlnFn(renderView(v, terminalWidth()))
		return nil
	}

	sections, err := menuSections(ctx, v.Categories, v.Catalog, v.Fallback, a.items)
	if err != nil {
		a.logger.Error(ctx, "menu items unavailable", "error", err)
		printlnFn("Menu items unavailable:", err.Error())
		return err
	}
	if v.Fallback {
		printlnFn("Using local menu.")
	}
	printlnFn(renderCatalog(sections, terminalWidth()))
	return nil
}

func (a *App) Refetch(ctx context.Context) error {
	printlnFn(renderView(a.retriever.Refetch(ctx), terminalWidth()))
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	a.retriever.Reset()
	printlnFn("Catalog reset")
	return nil
}

// Ping probes the endpoint once and updates the connection mode.
func (a *App) Ping(ctx context.Context) error {
	r := a.checkOnline(ctx)
	printlnFn(renderConnection(r))
	if !r.Reachable {
		return errors.New(r.Message)
	}
	return nil
}

func (a *App) Status(ctx context.Context) error {
	printlnFn(renderStatus(a.retriever.View(), a.Mode()))
	return nil
}
