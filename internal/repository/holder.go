package repository

import (
	"context"

	"github.com/brevetti-digital/backend/internal/dto"
	"github.com/brevetti-digital/backend/internal/model"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"gorm.io/gorm"
)

// HolderRepository is the persistence port for rights-holders
type HolderRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Holder, error)
	GetByIDs(ctx context.Context, ids []uint) ([]model.Holder, error)
	List(ctx context.Context, filter dto.HolderFilter, limit, offset int) ([]model.Holder, int64, error)
	Create(ctx context.Context, holder *model.Holder) error
	Update(ctx context.Context, holder *model.Holder) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*dto.HolderStatsResponse, error)
}

type holderRepository struct {
	db *gorm.DB
}

func NewHolderRepository(db *gorm.DB) HolderRepository {
	return &holderRepository{db: db}
}

func (r *holderRepository) GetByID(ctx context.Context, id uint) (*model.Holder, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "GetByID")

	var holder model.Holder
	result := r.db.WithContext(ctx).First(&holder, id)
	if result.Error != nil {
		logger.DebugWithContext(ctx, "Failed to get holder by ID").
			Uint("holder_id", id).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &holder, nil
}

// GetByIDs resolves a set of holder references. Missing ids are a caller
// concern: the result may be shorter than the input.
func (r *holderRepository) GetByIDs(ctx context.Context, ids []uint) ([]model.Holder, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "GetByIDs")

	if len(ids) == 0 {
		return nil, nil
	}

	var holders []model.Holder
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&holders).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch holders by ids").Err(err).Log()
		return nil, err
	}

	return holders, nil
}

func (r *holderRepository) List(ctx context.Context, filter dto.HolderFilter, limit, offset int) ([]model.Holder, int64, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.Holder{})

	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR tax_code ILIKE ? OR vat_number ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count holders").Err(err).Log()
		return nil, 0, err
	}

	var holders []model.Holder
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&holders).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch holders").
			Int("limit", limit).
			Int("offset", offset).
			Err(err).
			Log()
		return nil, 0, err
	}

	return holders, total, nil
}

func (r *holderRepository) Create(ctx context.Context, holder *model.Holder) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(holder).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create holder").
			String("name", holder.Name).
			Err(err).
			Log()
		return err
	}

	return nil
}

func (r *holderRepository) Update(ctx context.Context, holder *model.Holder) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Update")

	if err := r.db.WithContext(ctx).Omit("Patents").Save(holder).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to update holder").
			Uint("holder_id", holder.ID).
			Err(err).
			Log()
		return err
	}

	return nil
}

func (r *holderRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Holder{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete holder").
			Uint("holder_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

type kindCount struct {
	Kind  string
	Count int64
}

func (r *holderRepository) Stats(ctx context.Context) (*dto.HolderStatsResponse, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "Stats")

	db := r.db.WithContext(ctx)
	stats := &dto.HolderStatsResponse{
		ByKind: make(map[string]int64),
	}

	if err := db.Model(&model.Holder{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var byKind []kindCount
	if err := db.Model(&model.Holder{}).
		Select("kind, COUNT(*) AS count").
		Group("kind").
		Scan(&byKind).Error; err != nil {
		return nil, err
	}
	for _, row := range byKind {
		stats.ByKind[row.Kind] = row.Count
	}

	if err := db.Model(&model.Holder{}).Where("active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	return stats, nil
}
