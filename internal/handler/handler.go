package handler

import (
	"context"
	"strconv"

	"github.com/brevetti-digital/backend/internal/constants"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/pkg/logger"
	"github.com/brevetti-digital/backend/pkg/validation"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error onto the envelope and logs it with
// method, path and status before the response goes out
func respondError(ctx context.Context, c *gin.Context, err error) {
	status := apperrors.ToHTTPStatus(err)

	logger.ErrorWithContext(ctx, "Request failed").
		String("method", c.Request.Method).
		String("path", c.Request.URL.Path).
		StatusCode(status).
		Err(err).
		Log()

	constants.JSONError(c, status, apperrors.GetErrorMessage(err), nil)
}

// respondValidationError answers 400 with every field violation listed
func respondValidationError(ctx context.Context, c *gin.Context, err error) {
	details := validation.FormatBindingError(err)

	logger.WarnWithContext(ctx, "Request payload failed validation").
		String("method", c.Request.Method).
		String("path", c.Request.URL.Path).
		Int("violations", len(details)).
		Log()

	constants.JSONError(c, apperrors.ToHTTPStatus(apperrors.ErrValidationFailed), constants.MsgValidationFailed, details)
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
