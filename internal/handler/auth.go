package handler

import (
	"net/http"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/dto"
	"github.com/brevetti-digital/backend/internal/service"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Login")

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	logger.InfoWithContext(ctx, "User login attempt").
		String("email", req.Email).
		Log()

	response, err := h.authService.Login(ctx, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, response)
}
