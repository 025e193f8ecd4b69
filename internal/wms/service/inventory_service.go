package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/refnum"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/google/uuid"
)

// InventoryService 库存记录服务。
// 库存记录有两个来源：人工录入和收货过账，互不覆盖。
type InventoryService struct {
	repo      *repository.InventoryRepository
	dashboard *DashboardService
}

func NewInventoryService(repo *repository.InventoryRepository, dashboard *DashboardService) *InventoryService {
	return &InventoryService{repo: repo, dashboard: dashboard}
}

// InventoryFields 库存字段，创建与编辑共用
type InventoryFields struct {
	ReferenceNumber     string `json:"ReferenceNumber"`
	ProductName         string `json:"ProductName" binding:"required"`
	ProductSKU          string `json:"ProductSKU" binding:"required"`
	ProductDescription  string `json:"ProductDescription"`
	ProductQuantity     string `json:"ProductQuantity"`
	ProductCostPrice    string `json:"ProductCostPrice"`
	ProductSellingPrice string `json:"ProductSellingPrice"`
	ProductStatus       string `json:"ProductStatus"`
}

func (f InventoryFields) apply(rec *entity.InventoryRecord) {
	rec.ProductName = f.ProductName
	rec.ProductSKU = f.ProductSKU
	rec.ProductDescription = f.ProductDescription
	rec.ProductQuantity = f.ProductQuantity
	rec.ProductCostPrice = f.ProductCostPrice
	rec.ProductSellingPrice = f.ProductSellingPrice
	rec.ProductStatus = f.ProductStatus
}

func (s *InventoryService) Create(ctx context.Context, fields InventoryFields) (*entity.InventoryRecord, error) {
	rec := &entity.InventoryRecord{ID: uuid.New().String()}
	fields.apply(rec)

	rec.ReferenceNumber = fields.ReferenceNumber
	if rec.ReferenceNumber == "" {
		rec.ReferenceNumber = refnum.New(refnum.PrefixInventory)
	}
	if rec.ProductStatus == "" {
		rec.ProductStatus = entity.ProductStatusDraft
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("创建库存记录失败: %w", err)
	}
	s.dashboard.InvalidateCache(ctx)
	return rec, nil
}

// Update 整单替换；参考号保留原值
func (s *InventoryService) Update(ctx context.Context, id string, fields InventoryFields) (*entity.InventoryRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("更新库存记录失败: %w", err)
	}
	s.dashboard.InvalidateCache(ctx)
	return rec, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.dashboard.InvalidateCache(ctx)
	return nil
}

func (s *InventoryService) List(ctx context.Context, params repository.InventoryListParams) ([]entity.InventoryRecord, int64, error) {
	return s.repo.List(ctx, params)
}

// LookupProduct 商品名查询；名字为空时由 handler 走名称列表
func (s *InventoryService) LookupProduct(ctx context.Context, name string) (*entity.InventoryRecord, error) {
	return s.repo.FindByProductName(ctx, name)
}

func (s *InventoryService) ListProductNames(ctx context.Context) ([]string, error) {
	return s.repo.ListProductNames(ctx)
}
