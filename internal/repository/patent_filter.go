package repository

import (
	"time"

	"github.com/brevetti-digital/backend/internal/dto"
	"github.com/brevetti-digital/backend/internal/model"
)

// Clause is one parameterized WHERE fragment. Fragments are always
// AND-combined by the caller; OR only ever appears inside a fragment.
type Clause struct {
	Expr string
	Args []interface{}
}

// sortableColumns whitelists the fields a client may sort patents by.
// Anything else falls back to the default so raw input never reaches SQL.
var sortableColumns = map[string]string{
	"filing_date": "filing_date",
	"expiry_date": "expiry_date",
	"grant_date":  "grant_date",
	"number":      "number",
	"title":       "title",
	"status":      "status",
	"created_at":  "created_at",
}

const defaultSortColumn = "filing_date"

// BuildPatentClauses translates the optional filters into parameterized
// WHERE fragments. Free-text search expands to OR over title, number and
// description, case-insensitive; everything else is a single predicate.
func BuildPatentClauses(f dto.PatentFilter) []Clause {
	clauses := make([]Clause, 0, 5)

	if f.Status != "" {
		clauses = append(clauses, Clause{
			Expr: "status = ?",
			Args: []interface{}{f.Status},
		})
	}

	if f.HolderID > 0 {
		clauses = append(clauses, Clause{
			Expr: "id IN (SELECT patent_id FROM patent_holders WHERE holder_id = ?)",
			Args: []interface{}{f.HolderID},
		})
	}

	if f.FiledAfter != nil {
		clauses = append(clauses, Clause{
			Expr: "filing_date >= ?",
			Args: []interface{}{*f.FiledAfter},
		})
	}

	if f.FiledUntil != nil {
		clauses = append(clauses, Clause{
			Expr: "filing_date <= ?",
			Args: []interface{}{*f.FiledUntil},
		})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		clauses = append(clauses, Clause{
			Expr: "(title ILIKE ? OR number ILIKE ? OR description ILIKE ?)",
			Args: []interface{}{pattern, pattern, pattern},
		})
	}

	return clauses
}

// BuildExpiryClauses is the canned upcoming-expiry filter: expiry inside
// [now, now+windowDays] and status outside the terminal set. The terminal
// list is an exclusion, so a newly added non-terminal status is covered
// without touching this query.
func BuildExpiryClauses(now time.Time, windowDays int) []Clause {
	until := now.AddDate(0, 0, windowDays)
	return []Clause{
		{Expr: "expiry_date >= ?", Args: []interface{}{now}},
		{Expr: "expiry_date <= ?", Args: []interface{}{until}},
		{Expr: "status NOT IN ?", Args: []interface{}{model.TerminalStatuses}},
	}
}

// NormalizeSort maps client sort directives onto a safe ORDER BY clause.
// Unknown fields and orders fall back to filing_date desc so pagination
// stays stable across repeated calls with the same filters.
func NormalizeSort(field, order string) string {
	column, ok := sortableColumns[field]
	if !ok {
		column = defaultSortColumn
	}

	if order == "asc" {
		return column + " ASC"
	}
	return column + " DESC"
}
