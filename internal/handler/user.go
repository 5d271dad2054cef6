package handler

import (
	"net/http"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/service"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "CreateUser")

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	user, err := h.userService.Create(ctx, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusCreated, constants.MsgCreated, user)
}

func (h *UserHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ListUsers")

	var filter dto.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	page := constants.ParsePaginationParams(c)

	result, err := h.userService.List(ctx, filter, page)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, result)
}

func (h *UserHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetUser")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	user, err := h.userService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "UpdateUser")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	user, err := h.userService.Update(ctx, id, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgUpdated, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "DeleteUser")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	if err := h.userService.Delete(ctx, id); err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgDeleted, nil)
}
