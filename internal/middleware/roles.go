package middleware

import (
	"github.com/brevetti-digital/backend/internal/constants"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/brevetti-digital/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Allowed is the role policy decision: an empty required set allows any
// role, otherwise the identity's role must be a member.
func Allowed(role model.Role, required []model.Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// RequireRoles authorizes the already-authenticated identity against the
// route's declared roles. A failure here is 403: the caller is known and
// valid, just underprivileged, which is a different condition from an
// unknown caller.
func RequireRoles(required ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(constants.GinKeyCurrentUser)
		if !exists {
			// Guard not run for this route; treat as unauthenticated
			c.JSON(apperrors.ToHTTPStatus(apperrors.ErrUnauthenticated), constants.BuildErrorResponse(
				apperrors.ToHTTPStatus(apperrors.ErrUnauthenticated),
				apperrors.ErrUnauthenticated.Message,
				nil,
				c.Request.URL.Path,
			))
			c.Abort()
			return
		}

		user := value.(*model.User)
		if !Allowed(user.Role, required) {
			logger.GetLogger().Warn("Insufficient role for route",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Uint("user_id", user.ID),
				zap.String("role", string(user.Role)))
			c.JSON(apperrors.ToHTTPStatus(apperrors.ErrForbidden), constants.BuildErrorResponse(
				apperrors.ToHTTPStatus(apperrors.ErrForbidden),
				apperrors.ErrForbidden.Message,
				nil,
				c.Request.URL.Path,
			))
			c.Abort()
			return
		}

		c.Next()
	}
}
