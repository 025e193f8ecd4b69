package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// CreateInTx 在已有事务内插入，过账流程用
func (r *InventoryRepository) CreateInTx(tx *gorm.DB, rec *entity.InventoryRecord) error {
	return tx.Create(rec).Error
}

func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetBySourceReceivingID 按过账来源查库存记录，幂等重放用
func (r *InventoryRepository) GetBySourceReceivingID(ctx context.Context, receivingID string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.db.WithContext(ctx).
		Where("source_receiving_id = ? AND deleted_at IS NULL", receivingID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByProductName 商品名不区分大小写精确匹配
func (r *InventoryRepository) FindByProductName(ctx context.Context, name string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(product_name) = LOWER(?) AND deleted_at IS NULL", name).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListProductNames 只取商品名一列
func (r *InventoryRepository) ListProductNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entity.InventoryRecord{}).
		Where("deleted_at IS NULL").
		Pluck("product_name", &names).Error
	return names, err
}

func (r *InventoryRepository) Update(ctx context.Context, rec *entity.InventoryRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.InventoryRecord{}).Error
}

type InventoryListParams struct {
	Status  string
	Keyword string
	Page    int
	Size    int
}

func (r *InventoryRepository) List(ctx context.Context, params InventoryListParams) ([]entity.InventoryRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.InventoryRecord{}).Where("deleted_at IS NULL")

	if params.Status != "" {
		query = query.Where("product_status = ?", params.Status)
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

	var items []entity.InventoryRecord
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&items).Error

	return items, total, err
}

// All 全量读取，看板聚合在内存中完成
func (r *InventoryRepository) All(ctx context.Context) ([]entity.InventoryRecord, error) {
	var items []entity.InventoryRecord
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
