package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"gorm.io/gorm"
)

type ReorderRepository struct {
	db *gorm.DB
}

func NewReorderRepository(db *gorm.DB) *ReorderRepository {
	return &ReorderRepository{db: db}
}

func (r *ReorderRepository) Create(ctx context.Context, rec *entity.ReorderRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ReorderRepository) GetByID(ctx context.Context, id string) (*entity.ReorderRecord, error) {
	var rec entity.ReorderRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReorderRepository) Update(ctx context.Context, rec *entity.ReorderRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *ReorderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ReorderRecord{}).Error
}

type ReorderListParams struct {
	Status  string
	Keyword string
	Page    int
	Size    int
}

func (r *ReorderRepository) List(ctx context.Context, params ReorderListParams) ([]entity.ReorderRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.ReorderRecord{}).Where("deleted_at IS NULL")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("product_name ILIKE ? OR product_sku ILIKE ? OR supplier_name ILIKE ?", kw, kw, kw)
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

	var items []entity.ReorderRecord
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&items).Error

	return items, total, err
}

// All 全量读取，按创建顺序返回（top-N 的并列名次按原始顺序裁定）
func (r *ReorderRepository) All(ctx context.Context) ([]entity.ReorderRecord, error) {
	var items []entity.ReorderRecord
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
