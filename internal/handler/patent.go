package handler

import (
	"net/http"
	"strconv"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/service"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/validation"
	"github.com/gin-gonic/gin"
)

type PatentHandler struct {
	patentService *service.PatentService
}

func NewPatentHandler(patentService *service.PatentService) *PatentHandler {
	return &PatentHandler{
		patentService: patentService,
	}
}

func (h *PatentHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "CreatePatent")

	var req dto.CreatePatentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	patent, err := h.patentService.Create(ctx, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusCreated, constants.MsgCreated, patent)
}

func (h *PatentHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ListPatents")

	var filter dto.PatentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	page := constants.ParsePaginationParams(c)
	sortField, sortOrder := constants.ParseSortParams(c, "filing_date", "desc")

	result, err := h.patentService.List(ctx, filter, page, sortField, sortOrder)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, result)
}

// Expiring lists the patents whose expiry falls within the requested
// window (?days=30 by default), terminal statuses excluded
func (h *PatentHandler) Expiring(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ExpiringPatents")

	windowDays := service.DefaultExpiryWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			constants.JSONError(c, http.StatusBadRequest, constants.MsgValidationFailed,
				[]validation.FieldError{{Field: "days", Message: "days must be a positive integer"}})
			return
		}
		windowDays = parsed
	}

	page := constants.ParsePaginationParams(c)

	result, err := h.patentService.ListExpiring(ctx, windowDays, page)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, result)
}

func (h *PatentHandler) Stats(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "PatentStats")

	stats, err := h.patentService.Stats(ctx)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, stats)
}

func (h *PatentHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetPatent")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	patent, err := h.patentService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgSuccess, patent)
}

func (h *PatentHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "UpdatePatent")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	var req dto.UpdatePatentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	patent, err := h.patentService.Update(ctx, id, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgUpdated, patent)
}

func (h *PatentHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "DeletePatent")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	if err := h.patentService.Delete(ctx, id); err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusOK, constants.MsgDeleted, nil)
}

// AddNote appends a note authored by the authenticated user
func (h *PatentHandler) AddNote(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "AddNote")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	author := c.GetString(constants.GinKeyUserEmail)

	patent, err := h.patentService.AddNote(ctx, id, req, author)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusCreated, constants.MsgCreated, patent)
}

func (h *PatentHandler) AddTimelineEntry(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "AddTimelineEntry")

	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(ctx, c, apperrors.ErrNotFound)
		return
	}

	var req dto.AddTimelineEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, c, err)
		return
	}

	patent, err := h.patentService.AddTimelineEntry(ctx, id, req)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	constants.JSONSuccess(c, http.StatusCreated, constants.MsgCreated, patent)
}
