package service

import (
	"context"
	"errors"
	"time"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/brevetti-digital/backend/internal/repository"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"gorm.io/gorm"
)

// DefaultExpiryWindowDays is the upcoming-expiry horizon when the
// caller does not specify one
const DefaultExpiryWindowDays = 30

type PatentService struct {
	patents repository.PatentRepository
	holders repository.HolderRepository
	cache   *StatsCache
}

func NewPatentService(patents repository.PatentRepository, holders repository.HolderRepository, statsCache *StatsCache) *PatentService {
	return &PatentService{
		patents: patents,
		holders: holders,
		cache:   statsCache,
	}
}

// resolveHolders maps holder ids to live records; any unresolved id is a
// NotFound, never a silently shorter link set.
func (s *PatentService) resolveHolders(ctx context.Context, ids []uint) ([]model.Holder, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	holders, err := s.holders.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}
	if len(holders) != len(ids) {
		return nil, apperrors.NewDomainError("NOT_FOUND", "one or more holder references do not exist")
	}

	return holders, nil
}

func (s *PatentService) Create(ctx context.Context, req dto.CreatePatentRequest) (*dto.PatentResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "CreatePatent")

	holders, err := s.resolveHolders(ctx, req.HolderIDs)
	if err != nil {
		return nil, err
	}

	patent := &model.Patent{
		Number:          req.Number,
		Title:           req.Title,
		Description:     req.Description,
		Status:          model.PatentStatus(req.Status),
		FilingDate:      req.FilingDate,
		GrantDate:       req.GrantDate,
		ExpiryDate:      req.ExpiryDate,
		Inventors:       req.Inventors,
		Classifications: req.Classifications,
		Metadata:        req.Metadata,
		Holders:         holders,
	}

	if err := s.patents.Create(ctx, patent); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Patent created").
		Uint("patent_id", patent.ID).
		String("number", patent.Number).
		Log()

	resp := dto.NewPatentResponse(patent)
	return &resp, nil
}

func (s *PatentService) GetByID(ctx context.Context, id uint) (*dto.PatentResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "GetPatent")

	patent, err := s.patents.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	resp := dto.NewPatentResponse(patent)
	return &resp, nil
}

func (s *PatentService) List(ctx context.Context, filter dto.PatentFilter, page constants.PaginationParams, sortField, sortOrder string) (*constants.PaginatedResult, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ListPatents")

	orderBy := repository.NormalizeSort(sortField, sortOrder)

	patents, total, err := s.patents.List(ctx, filter, page.Limit, page.Offset, orderBy)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	result := constants.NewPaginatedResult(dto.NewPatentResponses(patents), total, page.Page, page.Limit)
	return &result, nil
}

// ListExpiring returns patents whose expiry falls inside the next
// windowDays, excluding terminal statuses
func (s *PatentService) ListExpiring(ctx context.Context, windowDays int, page constants.PaginationParams) (*constants.PaginatedResult, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ListExpiringPatents")

	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}

	patents, total, err := s.patents.ListExpiring(ctx, time.Now().UTC(), windowDays, page.Limit, page.Offset)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	result := constants.NewPaginatedResult(dto.NewPatentResponses(patents), total, page.Page, page.Limit)
	return &result, nil
}

func (s *PatentService) Update(ctx context.Context, id uint, req dto.UpdatePatentRequest) (*dto.PatentResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "UpdatePatent")

	patent, err := s.patents.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	if req.Title != "" {
		patent.Title = req.Title
	}
	if req.Description != nil {
		patent.Description = *req.Description
	}
	if req.Status != "" {
		patent.Status = model.PatentStatus(req.Status)
	}
	if req.FilingDate != nil {
		patent.FilingDate = *req.FilingDate
	}
	if req.GrantDate != nil {
		patent.GrantDate = req.GrantDate
	}
	if req.ExpiryDate != nil {
		patent.ExpiryDate = *req.ExpiryDate
	}
	if req.Inventors != nil {
		patent.Inventors = req.Inventors
	}
	if req.Classifications != nil {
		patent.Classifications = req.Classifications
	}
	if req.Metadata != nil {
		patent.Metadata = req.Metadata
	}

	if err := s.patents.Update(ctx, patent); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	if req.HolderIDs != nil {
		holders, err := s.resolveHolders(ctx, req.HolderIDs)
		if err != nil {
			return nil, err
		}
		if err := s.patents.ReplaceHolders(ctx, patent, holders); err != nil {
			return nil, apperrors.TranslateStoreError(err)
		}
		patent.Holders = holders
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Patent updated").
		Uint("patent_id", patent.ID).
		Log()

	resp := dto.NewPatentResponse(patent)
	return &resp, nil
}

func (s *PatentService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.NewContext(ctx, "service", "DeletePatent")

	if err := s.patents.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.WrapError(apperrors.ErrNotFound, err)
		}
		return apperrors.TranslateStoreError(err)
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Patent deleted").
		Uint("patent_id", id).
		Log()

	return nil
}

// AddNote appends an annotation to the patent. Notes are append-only:
// existing entries are never rewritten.
func (s *PatentService) AddNote(ctx context.Context, id uint, req dto.AddNoteRequest, author string) (*dto.PatentResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "AddNote")

	patent, err := s.patents.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	patent.Notes = append(patent.Notes, model.Note{
		Text:   req.Text,
		Author: author,
		Date:   time.Now().UTC(),
	})

	if err := s.patents.Update(ctx, patent); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	resp := dto.NewPatentResponse(patent)
	return &resp, nil
}

// AddTimelineEntry appends an event to the patent's history
func (s *PatentService) AddTimelineEntry(ctx context.Context, id uint, req dto.AddTimelineEntryRequest) (*dto.PatentResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "AddTimelineEntry")

	patent, err := s.patents.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	patent.Timeline = append(patent.Timeline, model.TimelineEntry{
		Date:        date,
		Description: req.Description,
	})

	if err := s.patents.Update(ctx, patent); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	resp := dto.NewPatentResponse(patent)
	return &resp, nil
}

// Stats serves the aggregate view, cached for a short TTL
func (s *PatentService) Stats(ctx context.Context) (*dto.PatentStatsResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "PatentStats")

	var cached dto.PatentStatsResponse
	if s.cache.Get(ctx, constants.CacheKeyPatentStats, &cached) {
		return &cached, nil
	}

	stats, err := s.patents.Stats(ctx)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	s.cache.Set(ctx, constants.CacheKeyPatentStats, stats)

	return stats, nil
}
