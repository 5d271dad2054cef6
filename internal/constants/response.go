package constants

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
)

// Standard Response Field Keys
const (
	ResponseFieldSuccess    = "success"
	ResponseFieldData       = "data"
	ResponseFieldMessage    = "message"
	ResponseFieldTimestamp  = "timestamp"
	ResponseFieldStatusCode = "statusCode"
	ResponseFieldDetails    = "details"
	ResponseFieldPath       = "path"
)

// PaginationMeta describes the page window of a list response. Total is the
// filtered count, not the collection size.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedResult wraps list data with its pagination metadata.
type PaginatedResult struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResult computes totalPages = ceil(total/limit).
func NewPaginatedResult(data any, total int64, page, limit int) PaginatedResult {
	return PaginatedResult{
		Data: data,
		Meta: PaginationMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}
}

// BuildSuccessResponse builds the standard response envelope.
func BuildSuccessResponse(statusCode int, message string, data any) gin.H {
	return gin.H{
		ResponseFieldSuccess:    true,
		ResponseFieldData:       data,
		ResponseFieldMessage:    message,
		ResponseFieldTimestamp:  time.Now().UTC().Format(time.RFC3339),
		ResponseFieldStatusCode: statusCode,
	}
}

// BuildErrorResponse builds the error envelope. Details may be nil.
func BuildErrorResponse(statusCode int, message string, details any, path string) gin.H {
	return gin.H{
		ResponseFieldSuccess:    false,
		ResponseFieldData:       nil,
		ResponseFieldMessage:    message,
		ResponseFieldDetails:    details,
		ResponseFieldTimestamp:  time.Now().UTC().Format(time.RFC3339),
		ResponseFieldStatusCode: statusCode,
		ResponseFieldPath:       path,
	}
}

// JSONSuccess writes the success envelope to the response.
func JSONSuccess(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, BuildSuccessResponse(statusCode, message, data))
}

// JSONError writes the error envelope, including the request path.
func JSONError(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, BuildErrorResponse(statusCode, message, details, c.Request.URL.Path))
}
