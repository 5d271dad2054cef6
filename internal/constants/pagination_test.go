package constants

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/items?"+query, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit window", "page=3&limit=25", 3, 25, 50},
		{"zero page clamps to first", "page=0&limit=10", 1, 10, 0},
		{"negative page clamps to first", "page=-4", 1, 10, 0},
		{"zero limit clamps to minimum", "limit=0", 1, 1, 0},
		{"oversized limit clamps to maximum", "limit=5000", 1, 100, 0},
		{"non-numeric falls back and clamps", "page=abc&limit=xyz", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePaginationParams(paginationContext(tt.query))
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestParseSortParams(t *testing.T) {
	field, order := ParseSortParams(paginationContext(""), "filing_date", OrderDesc)
	assert.Equal(t, "filing_date", field)
	assert.Equal(t, OrderDesc, order)

	field, order = ParseSortParams(paginationContext("sort_by=title&sort_order=asc"), "filing_date", OrderDesc)
	assert.Equal(t, "title", field)
	assert.Equal(t, OrderAsc, order)

	_, order = ParseSortParams(paginationContext("sort_order=sideways"), "filing_date", OrderDesc)
	assert.Equal(t, OrderDesc, order)
}

func TestNewPaginatedResultTotalPages(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		limit          int
		wantTotalPages int
	}{
		{"no matches", 0, 10, 0},
		{"exact fit", 30, 10, 3},
		{"partial last page", 31, 10, 4},
		{"single item", 1, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPaginatedResult([]string{}, tt.total, 1, tt.limit)
			assert.Equal(t, tt.total, result.Meta.Total)
			assert.Equal(t, tt.wantTotalPages, result.Meta.TotalPages)
		})
	}
}
