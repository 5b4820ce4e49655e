package services

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/mitchellh/mapstructure"
)

// wirePayload mirrors the "payload" object of a code "1" envelope.
type wirePayload struct {
	Data         []models.Category `mapstructure:"data"`
	CurrentPage  int               `mapstructure:"current_page"`
	LastPage     int               `mapstructure:"last_page"`
	PerPage      int               `mapstructure:"per_page"`
	Total        int               `mapstructure:"total"`
	From         *int              `mapstructure:"from"`
	To           *int              `mapstructure:"to"`
	NextPageURL  *string           `mapstructure:"next_page_url"`
	PrevPageURL  *string           `mapstructure:"prev_page_url"`
	FirstPageURL *string           `mapstructure:"first_page_url"`
	LastPageURL  *string           `mapstructure:"last_page_url"`
	Links        []any             `mapstructure:"links"`
}

var (
	activeFlagType = reflect.TypeOf(models.ActiveFlag(false))
	categoryIDType = reflect.TypeOf(models.CategoryID(""))
)

// catalogHook converts loosely typed wire values into the model's tolerant
// types before mapstructure assigns them.
func catalogHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case activeFlagType:
		return models.ActiveFlag(models.IsTruthyActive(data)), nil
	case categoryIDType:
		switch v := data.(type) {
		case string:
			return models.CategoryID(v), nil
		case float64:
			return models.CategoryIDFromNumber(json.Number(strconv.FormatFloat(v, 'f', -1, 64))), nil
		case json.Number:
			return models.CategoryIDFromNumber(v), nil
		}
	}
	return data, nil
}

func decodePayload(raw map[string]any) (wirePayload, error) {
	var p wirePayload

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       catalogHook,
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return p, fmt.Errorf("payload decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return p, fmt.Errorf("payload decode: %w", err)
	}
	return p, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// toPage builds a Page from the decoded payload. requested is used when the
// server omits current_page. The next/prev flags follow the locators.
func (p wirePayload) toPage(requested int) *models.Page {
	current := p.CurrentPage
	if current < 1 {
		current = requested
	}
	last := p.LastPage
	if last < current {
		last = current
	}

	next := deref(p.NextPageURL)
	prev := deref(p.PrevPageURL)

	categories := p.Data
	if categories == nil {
		categories = []models.Category{}
	}

	return &models.Page{
		Categories: categories,
		Pagination: models.Pagination{
			CurrentPage:  current,
			LastPage:     last,
			PerPage:      p.PerPage,
			Total:        p.Total,
			From:         deref(p.From),
			To:           deref(p.To),
			HasNextPage:  next != "",
			HasPrevPage:  prev != "",
			NextPageURL:  next,
			PrevPageURL:  prev,
			FirstPageURL: deref(p.FirstPageURL),
			LastPageURL:  deref(p.LastPageURL),
			Links:        p.Links,
		},
	}
}
