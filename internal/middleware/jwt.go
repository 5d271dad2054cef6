package middleware

import (
	"strings"

	"github.com/brevetti-digital/backend/internal/constants"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/repository"
	"github.com/brevetti-digital/backend/internal/service"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type JWTMiddleware struct {
	jwtService *service.JWTService
	userRepo   repository.UserRepository
}

func NewJWTMiddleware(jwtService *service.JWTService, userRepo repository.UserRepository) *JWTMiddleware {
	return &JWTMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

func rejectUnauthenticated(c *gin.Context, err *apperrors.DomainError) {
	c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(
		apperrors.ToHTTPStatus(err),
		err.Message,
		nil,
		c.Request.URL.Path,
	))
	c.Abort()
}

// RequireAuth is the access guard: it verifies the bearer token, then
// re-fetches the user so role and active status are checked live on
// every request. A deactivated account is rejected on its next request
// even if its token has not expired yet.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			logger.GetLogger().Warn("Missing Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			rejectUnauthenticated(c, apperrors.ErrUnauthenticated)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.GetLogger().Warn("Invalid Authorization header format",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			rejectUnauthenticated(c, apperrors.ErrUnauthenticated)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			logger.GetLogger().Warn("Invalid or expired token",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			rejectUnauthenticated(c, apperrors.ErrUnauthenticated)
			return
		}

		// Claims carry role and email but they are never trusted here:
		// only the live record decides.
		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.GetLogger().Warn("Token subject no longer exists",
				zap.String("path", c.Request.URL.Path),
				zap.Uint("user_id", claims.UserID),
				zap.Error(err))
			rejectUnauthenticated(c, apperrors.ErrUnauthenticated)
			return
		}

		if !user.Active {
			logger.GetLogger().Warn("Token subject is disabled",
				zap.String("path", c.Request.URL.Path),
				zap.Uint("user_id", user.ID))
			rejectUnauthenticated(c, apperrors.ErrAccountDisabled)
			return
		}

		c.Set(constants.GinKeyCurrentUser, user)
		c.Set(constants.GinKeyUserID, user.ID)
		c.Set(constants.GinKeyUserEmail, user.Email)
		c.Set(constants.GinKeyUserRole, string(user.Role))

		// Propagate identity into the request context for log correlation
		ctx := ctxutil.WithUserID(c.Request.Context(), user.ID)
		ctx = ctxutil.WithUserEmail(ctx, user.Email)
		ctx = ctxutil.WithUserRole(ctx, string(user.Role))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
