package services

import (
	"encoding/json"
	"testing"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCategories(t *testing.T, raw string) []models.Category {
	t.Helper()
	var out []models.Category
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestFilterActive_EquivalenceClasses(t *testing.T) {
	in := decodeCategories(t, `[
		{"id": 1, "name": "true", "is_active": true},
		{"id": 2, "name": "one", "is_active": 1},
		{"id": 3, "name": "one-float", "is_active": 1.0},
		{"id": 4, "name": "false", "is_active": false},
		{"id": 5, "name": "zero", "is_active": 0},
		{"id": 6, "name": "absent"},
		{"id": 7, "name": "null", "is_active": null},
		{"id": 8, "name": "string", "is_active": "1"}
	]`)

	got := FilterActive(in)

	assert.Equal(t, []string{"true", "one", "one-float"}, names(got))
}

func TestFilterActive_Idempotent(t *testing.T) {
	in := decodeCategories(t, `[
		{"id": "a", "name": "a", "is_active": 1},
		{"id": "b", "name": "b", "is_active": 0},
		{"id": "c", "name": "c", "is_active": true},
		{"id": "d", "name": "d"}
	]`)

	once := FilterActive(in)
	twice := FilterActive(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("FilterActive not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilterActive_PureAndNonNil(t *testing.T) {
	in := []models.Category{
		{ID: "1", Name: "x", IsActive: false},
		{ID: "2", Name: "y", IsActive: true},
	}
	snapshot := append([]models.Category(nil), in...)

	got := FilterActive(in)

	assert.Equal(t, []string{"y"}, names(got))
	assert.Equal(t, snapshot, in)

	empty := FilterActive(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
