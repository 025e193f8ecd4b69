package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"gorm.io/gorm"
)

type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(ctx context.Context, rec *entity.TransferRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *TransferRepository) GetByID(ctx context.Context, id string) (*entity.TransferRecord, error) {
	var rec entity.TransferRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *TransferRepository) Update(ctx context.Context, rec *entity.TransferRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *TransferRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.TransferRecord{}).Error
}

type TransferListParams struct {
	Status       string
	FromLocation string
	ToLocation   string
	Keyword      string
	Page         int
	Size         int
}

func (r *TransferRepository) List(ctx context.Context, params TransferListParams) ([]entity.TransferRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.TransferRecord{}).Where("deleted_at IS NULL")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.FromLocation != "" {
		query = query.Where("from_location = ?", params.FromLocation)
	}
	if params.ToLocation != "" {
		query = query.Where("to_location = ?", params.ToLocation)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("product_name ILIKE ? OR product_sku ILIKE ? OR reference_number ILIKE ?", kw, kw, kw)
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

	var items []entity.TransferRecord
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&items).Error

	return items, total, err
}
