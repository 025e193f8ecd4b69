package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReceivingRepository struct {
	db *gorm.DB
}

func NewReceivingRepository(db *gorm.DB) *ReceivingRepository {
	return &ReceivingRepository{db: db}
}

func (r *ReceivingRepository) Create(ctx context.Context, rec *entity.ReceivingRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ReceivingRepository) GetByID(ctx context.Context, id string) (*entity.ReceivingRecord, error) {
	var rec entity.ReceivingRecord
	err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByIDForUpdate 在事务内加行锁读取，过账流程用
func (r *ReceivingRepository) GetByIDForUpdate(tx *gorm.DB, id string) (*entity.ReceivingRecord, error) {
	var rec entity.ReceivingRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReceivingRepository) Update(ctx context.Context, rec *entity.ReceivingRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// UpdateStatus 更新收货状态，返回 ErrNotFound 表示单据不存在
func (r *ReceivingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).Model(&entity.ReceivingRecord{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("received_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 按ID删除；删除不存在的单据不报错
func (r *ReceivingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ReceivingRecord{}).Error
}

type ReceivingListParams struct {
	Status    string
	Location  string
	Keyword   string
	DateStart string
	DateEnd   string
	Page      int
	Size      int
}

func (r *ReceivingRepository) filtered(ctx context.Context, params ReceivingListParams) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.ReceivingRecord{}).Where("deleted_at IS NULL")

	if params.Status != "" {
		query = query.Where("received_status = ?", params.Status)
	}
	if params.Location != "" {
		query = query.Where("warehouse_location = ?", params.Location)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where(
			"supplier_name ILIKE ? OR po_number ILIKE ? OR reference_number ILIKE ? OR product_name ILIKE ?",
			kw, kw, kw, kw,
		)
	}
	if params.DateStart != "" {
		query = query.Where("created_at >= ?", params.DateStart)
	}
	if params.DateEnd != "" {
		query = query.Where("created_at <= ?", params.DateEnd)
	}

	return query
}

func (r *ReceivingRepository) List(ctx context.Context, params ReceivingListParams) ([]entity.ReceivingRecord, int64, error) {
	query := r.filtered(ctx, params)

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

	var items []entity.ReceivingRecord
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&items).Error

	return items, total, err
}

// ListAll 不分页全量读取，导出报表用
func (r *ReceivingRepository) ListAll(ctx context.Context, params ReceivingListParams) ([]entity.ReceivingRecord, error) {
	var items []entity.ReceivingRecord
	err := r.filtered(ctx, params).Order("created_at DESC").Find(&items).Error
	return items, err
}

// DB 返回底层db用于事务
func (r *ReceivingRepository) DB() *gorm.DB {
	return r.db
}
