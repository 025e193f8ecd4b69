package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, rec *entity.SupplierRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*entity.SupplierRecord, error) {
	var rec entity.SupplierRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByName 供应商名不区分大小写精确匹配
func (r *SupplierRepository) FindByName(ctx context.Context, name string) (*entity.SupplierRecord, error) {
	var rec entity.SupplierRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(supplier_name) = LOWER(?) AND deleted_at IS NULL", name).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListNames 只取供应商名一列
func (r *SupplierRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entity.SupplierRecord{}).
		Where("deleted_at IS NULL").
		Pluck("supplier_name", &names).Error
	return names, err
}

func (r *SupplierRepository) Update(ctx context.Context, rec *entity.SupplierRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.SupplierRecord{}).Error
}

type SupplierListParams struct {
	Status   string
	Category string
	Keyword  string
	Page     int
	Size     int
}

func (r *SupplierRepository) List(ctx context.Context, params SupplierListParams) ([]entity.SupplierRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.SupplierRecord{}).Where("deleted_at IS NULL")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Category != "" {
		query = query.Where("categories = ?", params.Category)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("supplier_name ILIKE ? OR contact_person ILIKE ? OR reference_number ILIKE ?", kw, kw, kw)
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

	var items []entity.SupplierRecord
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&items).Error

	return items, total, err
}
