package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/refnum"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/google/uuid"
)

// ReorderService 补货提醒服务
type ReorderService struct {
	repo         *repository.ReorderRepository
	supplierRepo *repository.SupplierRepository
	dashboard    *DashboardService
}

func NewReorderService(repo *repository.ReorderRepository, supplierRepo *repository.SupplierRepository, dashboard *DashboardService) *ReorderService {
	return &ReorderService{repo: repo, supplierRepo: supplierRepo, dashboard: dashboard}
}

// ReorderFields 补货字段，创建与编辑共用
type ReorderFields struct {
	ReferenceNumber string `json:"ReferenceNumber"`
	ProductSKU      string `json:"ProductSKU" binding:"required"`
	ProductName     string `json:"ProductName" binding:"required"`
	CurrentStock    string `json:"CurrentStock"`
	ReorderLevel    string `json:"ReorderLevel"`
	SupplierName    string `json:"SupplierName"`
	LastOrderDate   string `json:"LastOrderDate"`
	LeadTime        string `json:"LeadTime"`
	ReorderQTY      string `json:"ReorderQTY"`
	Status          string `json:"Status"`
}

func (f ReorderFields) apply(rec *entity.ReorderRecord) {
	rec.ProductSKU = f.ProductSKU
	rec.ProductName = f.ProductName
	rec.CurrentStock = f.CurrentStock
	rec.ReorderLevel = f.ReorderLevel
	rec.SupplierName = f.SupplierName
	rec.LastOrderDate = f.LastOrderDate
	rec.LeadTime = f.LeadTime
	rec.ReorderQTY = f.ReorderQTY
	rec.Status = f.Status
}

func (s *ReorderService) Create(ctx context.Context, fields ReorderFields) (*entity.ReorderRecord, error) {
	rec := &entity.ReorderRecord{ID: uuid.New().String()}
	fields.apply(rec)

	rec.ReferenceNumber = fields.ReferenceNumber
	if rec.ReferenceNumber == "" {
		rec.ReferenceNumber = refnum.New(refnum.PrefixReorder)
	}
	if rec.Status == "" {
		rec.Status = entity.ReorderStatusActive
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("创建补货记录失败: %w", err)
	}
	s.dashboard.InvalidateCache(ctx)
	return rec, nil
}

// Update 整单替换；参考号保留原值
func (s *ReorderService) Update(ctx context.Context, id string, fields ReorderFields) (*entity.ReorderRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("更新补货记录失败: %w", err)
	}
	s.dashboard.InvalidateCache(ctx)
	return rec, nil
}

func (s *ReorderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.dashboard.InvalidateCache(ctx)
	return nil
}

func (s *ReorderService) List(ctx context.Context, params repository.ReorderListParams) ([]entity.ReorderRecord, int64, error) {
	return s.repo.List(ctx, params)
}

// LookupSupplier 供应商名查询，补货表单带出供应商档案用
func (s *ReorderService) LookupSupplier(ctx context.Context, name string) (*entity.SupplierRecord, error) {
	return s.supplierRepo.FindByName(ctx, name)
}

func (s *ReorderService) ListSupplierNames(ctx context.Context) ([]string, error) {
	return s.supplierRepo.ListNames(ctx)
}
