package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"gorm.io/gorm"
)

type PurchaseOrderRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

func (r *PurchaseOrderRepository) Create(ctx context.Context, rec *entity.PurchaseOrderRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *PurchaseOrderRepository) GetByID(ctx context.Context, id string) (*entity.PurchaseOrderRecord, error) {
	var rec entity.PurchaseOrderRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByPONumber PO号不区分大小写精确匹配
func (r *PurchaseOrderRepository) FindByPONumber(ctx context.Context, poNumber string) (*entity.PurchaseOrderRecord, error) {
	var rec entity.PurchaseOrderRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(po_number) = LOWER(?) AND deleted_at IS NULL", poNumber).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListPONumbers 只取PO号一列
func (r *PurchaseOrderRepository) ListPONumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&entity.PurchaseOrderRecord{}).
		Where("deleted_at IS NULL").
		Pluck("po_number", &numbers).Error
	return numbers, err
}

func (r *PurchaseOrderRepository) Update(ctx context.Context, rec *entity.PurchaseOrderRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *PurchaseOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PurchaseOrderRecord{}).Error
}

type PurchaseOrderListParams struct {
	DeliveryStatus string
	Supplier       string
	Keyword        string
	Page           int
	Size           int
}

func (r *PurchaseOrderRepository) List(ctx context.Context, params PurchaseOrderListParams) ([]entity.PurchaseOrderRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrderRecord{}).Where("deleted_at IS NULL")

	if params.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", params.DeliveryStatus)
	}
	if params.Supplier != "" {
		query = query.Where("supplier_name = ?", params.Supplier)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("po_number ILIKE ? OR supplier_name ILIKE ? OR item_name ILIKE ? OR buyer_name ILIKE ?", kw, kw, kw, kw)
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

	var items []entity.PurchaseOrderRecord
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&items).Error

	return items, total, err
}
