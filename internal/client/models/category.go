// Package models defines the catalog types produced by the retrieval
// pipeline: categories, pages, pagination metadata and result variants.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CategoryID is an opaque, comparable category identifier. The wire value
// may be a JSON number or a string; both decode to the same textual form.
type CategoryID string

func (id *CategoryID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = CategoryID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = CategoryIDFromNumber(n)
	return nil
}

// CategoryIDFromNumber renders a numeric identifier without exponent or
// trailing zeros, so 7, 7.0 and "7" all compare equal.
func CategoryIDFromNumber(n json.Number) CategoryID {
	if i, err := n.Int64(); err == nil {
		return CategoryID(strconv.FormatInt(i, 10))
	}
	if f, err := n.Float64(); err == nil {
		return CategoryID(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return CategoryID(strings.TrimSpace(n.String()))
}

// ActiveFlag is the decoded is_active field. The remote source encodes it
// as true/false or 1/0; true and any number equal to 1 mean active,
// everything else (including null and strings) means inactive.
// Decoding never fails.
type ActiveFlag bool

func (f *ActiveFlag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*f = false
		return nil
	}
	*f = ActiveFlag(IsTruthyActive(v))
	return nil
}

func (f ActiveFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// IsTruthyActive reports whether a decoded is_active value counts as active.
func IsTruthyActive(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case float64:
		return value == 1
	case float32:
		return value == 1
	case int:
		return value == 1
	case int64:
		return value == 1
	case json.Number:
		f, err := value.Float64()
		return err == nil && f == 1
	case ActiveFlag:
		return bool(value)
	}
	return false
}

// Category is an immutable catalog category record.
type Category struct {
	ID          CategoryID `json:"id" mapstructure:"id"`
	Name        string     `json:"name" mapstructure:"name"`
	Description string     `json:"description,omitempty" mapstructure:"description"`
	Summary     string     `json:"summary,omitempty" mapstructure:"summary"`
	ImageURL    string     `json:"image_url,omitempty" mapstructure:"image_url"`
	IsActive    ActiveFlag `json:"is_active" mapstructure:"is_active"`
}

// Active reports whether the category is currently active.
func (c Category) Active() bool {
	return bool(c.IsActive)
}

// Blurb returns the description, falling back to the summary.
func (c Category) Blurb() string {
	if c.Description != "" {
		return c.Description
	}
	return c.Summary
}
