package service

import (
	"context"
	"errors"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/brevetti-digital/backend/internal/repository"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"gorm.io/gorm"
)

type HolderService struct {
	holders repository.HolderRepository
	cache   *StatsCache
}

func NewHolderService(holders repository.HolderRepository, statsCache *StatsCache) *HolderService {
	return &HolderService{
		holders: holders,
		cache:   statsCache,
	}
}

func (s *HolderService) Create(ctx context.Context, req dto.CreateHolderRequest) (*dto.HolderResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "CreateHolder")

	holder := &model.Holder{
		Name:      req.Name,
		Kind:      model.HolderKind(req.Kind),
		TaxCode:   req.TaxCode,
		VATNumber: req.VATNumber,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		Email:     req.Email,
		Phone:     req.Phone,
		Active:    true,
		Metadata:  req.Metadata,
	}

	if err := s.holders.Create(ctx, holder); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Holder created").
		Uint("holder_id", holder.ID).
		String("kind", string(holder.Kind)).
		Log()

	resp := dto.NewHolderResponse(holder)
	return &resp, nil
}

func (s *HolderService) GetByID(ctx context.Context, id uint) (*dto.HolderResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "GetHolder")

	holder, err := s.holders.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	resp := dto.NewHolderResponse(holder)
	return &resp, nil
}

func (s *HolderService) List(ctx context.Context, filter dto.HolderFilter, page constants.PaginationParams) (*constants.PaginatedResult, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ListHolders")

	holders, total, err := s.holders.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	result := constants.NewPaginatedResult(dto.NewHolderResponses(holders), total, page.Page, page.Limit)
	return &result, nil
}

func (s *HolderService) Update(ctx context.Context, id uint, req dto.UpdateHolderRequest) (*dto.HolderResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "UpdateHolder")

	holder, err := s.holders.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	if req.Name != "" {
		holder.Name = req.Name
	}
	if req.Kind != "" {
		holder.Kind = model.HolderKind(req.Kind)
	}
	if req.TaxCode != nil {
		holder.TaxCode = *req.TaxCode
	}
	if req.VATNumber != nil {
		holder.VATNumber = *req.VATNumber
	}
	if req.Address != nil {
		holder.Address = *req.Address
	}
	if req.City != nil {
		holder.City = *req.City
	}
	if req.Country != nil {
		holder.Country = *req.Country
	}
	if req.Email != nil {
		holder.Email = *req.Email
	}
	if req.Phone != nil {
		holder.Phone = *req.Phone
	}
	if req.Active != nil {
		holder.Active = *req.Active
	}
	if req.Metadata != nil {
		holder.Metadata = req.Metadata
	}

	if err := s.holders.Update(ctx, holder); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Holder updated").
		Uint("holder_id", holder.ID).
		Log()

	resp := dto.NewHolderResponse(holder)
	return &resp, nil
}

func (s *HolderService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.NewContext(ctx, "service", "DeleteHolder")

	if err := s.holders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.WrapError(apperrors.ErrNotFound, err)
		}
		return apperrors.TranslateStoreError(err)
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Holder deleted").
		Uint("holder_id", id).
		Log()

	return nil
}

// Stats serves the aggregate view, cached for a short TTL
func (s *HolderService) Stats(ctx context.Context) (*dto.HolderStatsResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "HolderStats")

	var cached dto.HolderStatsResponse
	if s.cache.Get(ctx, constants.CacheKeyHolderStats, &cached) {
		return &cached, nil
	}

	stats, err := s.holders.Stats(ctx)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	s.cache.Set(ctx, constants.CacheKeyHolderStats, stats)

	return stats, nil
}
