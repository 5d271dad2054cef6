package repository

import (
	"testing"
	"time"

	"github.com/brevetti-digital/backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestBuildPatentClausesEmptyFilter(t *testing.T) {
	clauses := BuildPatentClauses(dto.PatentFilter{})
	assert.Empty(t, clauses)
}

func TestBuildPatentClausesCombinesAllFilters(t *testing.T) {
	after := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	clauses := BuildPatentClauses(dto.PatentFilter{
		Status:     "GRANTED",
		HolderID:   7,
		FiledAfter: &after,
		FiledUntil: &until,
		Search:     "turbine",
	})

	assert.Len(t, clauses, 5)

	assert.Equal(t, "status = ?", clauses[0].Expr)
	assert.Equal(t, []interface{}{"GRANTED"}, clauses[0].Args)

	assert.Contains(t, clauses[1].Expr, "patent_holders")
	assert.Equal(t, []interface{}{uint(7)}, clauses[1].Args)

	assert.Equal(t, "filing_date >= ?", clauses[2].Expr)
	assert.Equal(t, "filing_date <= ?", clauses[3].Expr)
}

func TestBuildPatentClausesFreeTextExpandsToThreeColumns(t *testing.T) {
	clauses := BuildPatentClauses(dto.PatentFilter{Search: "heat pump"})

	assert.Len(t, clauses, 1)
	assert.Equal(t, "(title ILIKE ? OR number ILIKE ? OR description ILIKE ?)", clauses[0].Expr)
	assert.Equal(t, []interface{}{"%heat pump%", "%heat pump%", "%heat pump%"}, clauses[0].Args)
}

func TestBuildExpiryClausesWindowAndExclusion(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	clauses := BuildExpiryClauses(now, 30)

	assert.Len(t, clauses, 3)
	assert.Equal(t, []interface{}{now}, clauses[0].Args)
	assert.Equal(t, []interface{}{now.AddDate(0, 0, 30)}, clauses[1].Args)
	assert.Equal(t, "status NOT IN ?", clauses[2].Expr)
}

func TestNormalizeSort(t *testing.T) {
	tests := []struct {
		field string
		order string
		want  string
	}{
		{"", "", "filing_date DESC"},
		{"filing_date", "asc", "filing_date ASC"},
		{"expiry_date", "desc", "expiry_date DESC"},
		{"number", "asc", "number ASC"},
		{"title; DROP TABLE patents", "asc", "filing_date ASC"},
		{"filing_date", "sideways", "filing_date DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSort(tt.field, tt.order), "field=%q order=%q", tt.field, tt.order)
	}
}
