package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"gorm.io/gorm"
)

type StockOutRepository struct {
	db *gorm.DB
}

func NewStockOutRepository(db *gorm.DB) *StockOutRepository {
	return &StockOutRepository{db: db}
}

func (r *StockOutRepository) Create(ctx context.Context, rec *entity.StockOutRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *StockOutRepository) GetByID(ctx context.Context, id string) (*entity.StockOutRecord, error) {
	var rec entity.StockOutRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *StockOutRepository) Update(ctx context.Context, rec *entity.StockOutRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *StockOutRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.StockOutRecord{}).Error
}

type StockOutListParams struct {
	Status  string
	Purpose string
	Keyword string
	Page    int
	Size    int
}

func (r *StockOutRepository) List(ctx context.Context, params StockOutListParams) ([]entity.StockOutRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.StockOutRecord{}).Where("deleted_at IS NULL")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Purpose != "" {
		query = query.Where("purpose = ?", params.Purpose)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("product_name ILIKE ? OR product_sku ILIKE ? OR recipient ILIKE ? OR reference_number ILIKE ?", kw, kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}

	var items []entity.StockOutRecord
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&items).Error

	return items, total, err
}
