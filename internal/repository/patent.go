package repository

import (
	"context"
	"time"

	"github.com/brevetti-digital/backend/internal/dto"
	"github.com/brevetti-digital/backend/internal/model"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"gorm.io/gorm"
)

// PatentRepository is the persistence port for patent records
type PatentRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Patent, error)
	List(ctx context.Context, filter dto.PatentFilter, limit, offset int, orderBy string) ([]model.Patent, int64, error)
	ListExpiring(ctx context.Context, now time.Time, windowDays, limit, offset int) ([]model.Patent, int64, error)
	Create(ctx context.Context, patent *model.Patent) error
	Update(ctx context.Context, patent *model.Patent) error
	ReplaceHolders(ctx context.Context, patent *model.Patent, holders []model.Holder) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*dto.PatentStatsResponse, error)
}

type patentRepository struct {
	db *gorm.DB
}

func NewPatentRepository(db *gorm.DB) PatentRepository {
	return &patentRepository{db: db}
}

func (r *patentRepository) GetByID(ctx context.Context, id uint) (*model.Patent, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "GetByID")

	var patent model.Patent
	result := r.db.WithContext(ctx).Preload("Holders").First(&patent, id)
	if result.Error != nil {
		logger.DebugWithContext(ctx, "Failed to get patent by ID").
			Uint("patent_id", id).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &patent, nil
}

// applyClauses AND-combines the prepared WHERE fragments
func applyClauses(query *gorm.DB, clauses []Clause) *gorm.DB {
	for _, c := range clauses {
		query = query.Where(c.Expr, c.Args...)
	}
	return query
}

func (r *patentRepository) List(ctx context.Context, filter dto.PatentFilter, limit, offset int, orderBy string) ([]model.Patent, int64, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "List")

	query := applyClauses(r.db.WithContext(ctx).Model(&model.Patent{}), BuildPatentClauses(filter))

	// Total reflects the filtered count, not the collection size
	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count patents").Err(err).Log()
		return nil, 0, err
	}

	var patents []model.Patent
	if err := query.Preload("Holders").Order(orderBy).Limit(limit).Offset(offset).Find(&patents).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch patents").
			Int("limit", limit).
			Int("offset", offset).
			String("order_by", orderBy).
			Err(err).
			Log()
		return nil, 0, err
	}

	return patents, total, nil
}

func (r *patentRepository) ListExpiring(ctx context.Context, now time.Time, windowDays, limit, offset int) ([]model.Patent, int64, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "ListExpiring")

	query := applyClauses(r.db.WithContext(ctx).Model(&model.Patent{}), BuildExpiryClauses(now, windowDays))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count expiring patents").Err(err).Log()
		return nil, 0, err
	}

	var patents []model.Patent
	if err := query.Preload("Holders").Order("expiry_date ASC").Limit(limit).Offset(offset).Find(&patents).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch expiring patents").
			Int("window_days", windowDays).
			Err(err).
			Log()
		return nil, 0, err
	}

	return patents, total, nil
}

func (r *patentRepository) Create(ctx context.Context, patent *model.Patent) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(patent).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create patent").
			String("number", patent.Number).
			Err(err).
			Log()
		return err
	}

	return nil
}

func (r *patentRepository) Update(ctx context.Context, patent *model.Patent) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Update")

	// Save does not touch many2many rows; holder links go through ReplaceHolders
	if err := r.db.WithContext(ctx).Omit("Holders").Save(patent).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to update patent").
			Uint("patent_id", patent.ID).
			Err(err).
			Log()
		return err
	}

	return nil
}

func (r *patentRepository) ReplaceHolders(ctx context.Context, patent *model.Patent, holders []model.Holder) error {
	ctx = ctxutil.NewContext(ctx, "repository", "ReplaceHolders")

	if err := r.db.WithContext(ctx).Model(patent).Association("Holders").Replace(holders); err != nil {
		logger.ErrorWithContext(ctx, "Failed to replace patent holders").
			Uint("patent_id", patent.ID).
			Int("holder_count", len(holders)).
			Err(err).
			Log()
		return err
	}

	return nil
}

func (r *patentRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Patent{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete patent").
			Uint("patent_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

type statusCount struct {
	Status string
	Count  int64
}

type yearCount struct {
	Year  int
	Count int64
}

const expiringSoonWindowDays = 90

// Stats aggregates the patent collection in a handful of grouped queries
func (r *patentRepository) Stats(ctx context.Context) (*dto.PatentStatsResponse, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "Stats")

	db := r.db.WithContext(ctx)
	stats := &dto.PatentStatsResponse{
		ByStatus:     make(map[string]int64),
		ByFilingYear: make(map[int]int64),
	}

	if err := db.Model(&model.Patent{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var byStatus []statusCount
	if err := db.Model(&model.Patent{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	var byYear []yearCount
	if err := db.Model(&model.Patent{}).
		Select("EXTRACT(YEAR FROM filing_date)::int AS year, COUNT(*) AS count").
		Group("year").
		Scan(&byYear).Error; err != nil {
		return nil, err
	}
	for _, row := range byYear {
		stats.ByFilingYear[row.Year] = row.Count
	}

	if err := db.Model(&model.Holder{}).
		Select("holders.id AS holder_id, holders.name AS name, COUNT(patent_holders.patent_id) AS count").
		Joins("JOIN patent_holders ON patent_holders.holder_id = holders.id").
		Group("holders.id, holders.name").
		Order("count DESC").
		Limit(5).
		Scan(&stats.TopHolders).Error; err != nil {
		return nil, err
	}

	expiring := applyClauses(db.Model(&model.Patent{}), BuildExpiryClauses(time.Now().UTC(), expiringSoonWindowDays))
	if err := expiring.Count(&stats.ExpiringSoon).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
