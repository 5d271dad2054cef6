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

type HolderHandler struct {
	holderService *service.HolderService
}

func NewHolderHandler(holderService *service.HolderService) *HolderHandler {
	return &HolderHandler{
		holderService: holderService,
	}
}

func (h *HolderHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "CreateHolder")

	var req dto.CreateHolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	holder, err := h.holderService.Create(ctx, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusCreated, constants.MsgCreated, holder)
}

func (h *HolderHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ListHolders")

	var filter dto.HolderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	page := constants.ParsePaginationParams(c)

	result, err := h.holderService.List(ctx, filter, page)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, result)
}

func (h *HolderHandler) Stats(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "HolderStats")

	stats, err := h.holderService.Stats(ctx)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, stats)
}

func (h *HolderHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetHolder")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	holder, err := h.holderService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, holder)
}

func (h *HolderHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "UpdateHolder")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	var req dto.UpdateHolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	holder, err := h.holderService.Update(ctx, id, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgUpdated, holder)
}

func (h *HolderHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "DeleteHolder")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	if err := h.holderService.Delete(ctx, id); err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgDeleted, nil)
}
