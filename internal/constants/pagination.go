package constants

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination Query Parameters
const (
	QueryParamPage      = "page"
	QueryParamLimit     = "limit"
	QueryParamSearch    = "search"
	QueryParamSortBy    = "sort_by"
	QueryParamSortOrder = "sort_order"
)

// Default Pagination Values (as strings for query parsing)
const (
	DefaultPage   = "1"
	DefaultLimit  = "10"
	DefaultSearch = ""
)

// Pagination Limits (as integers for validation)
const (
	MinPage  = 1
	MinLimit = 1
	MaxLimit = 100
)

// Sort Orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// PaginationParams carries the normalized page window of a list request.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePaginationParams parses and clamps page/limit query parameters.
func ParsePaginationParams(c *gin.Context) PaginationParams {
	pageStr := c.DefaultQuery(QueryParamPage, DefaultPage)
	limitStr := c.DefaultQuery(QueryParamLimit, DefaultLimit)

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < MinPage {
		page = MinPage
	}
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// ParseSortParams returns the requested sort field and order, falling back
// to the given defaults. Order is normalized to asc/desc.
func ParseSortParams(c *gin.Context, defaultField, defaultOrder string) (string, string) {
	sortBy := c.DefaultQuery(QueryParamSortBy, defaultField)
	sortOrder := c.DefaultQuery(QueryParamSortOrder, defaultOrder)
	if sortOrder != OrderAsc && sortOrder != OrderDesc {
		sortOrder = defaultOrder
	}
	return sortBy, sortOrder
}
