package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/refnum"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/google/uuid"
)

// TransferService 库存调拨服务
type TransferService struct {
	repo          *repository.TransferRepository
	inventoryRepo *repository.InventoryRepository
}

func NewTransferService(repo *repository.TransferRepository, inventoryRepo *repository.InventoryRepository) *TransferService {
	return &TransferService{repo: repo, inventoryRepo: inventoryRepo}
}

// TransferFields 调拨字段，创建与编辑共用
type TransferFields struct {
	ReferenceNumber string `json:"ReferenceNumber"`
	DateTransfer    string `json:"DateTransfer"`
	RequestedBy     string `json:"RequestedBy"`
	FromLocation    string `json:"FromLocation"`
	ToLocation      string `json:"ToLocation"`
	ProductSKU      string `json:"ProductSKU" binding:"required"`
	ProductName     string `json:"ProductName" binding:"required"`
	ProductQuantity string `json:"ProductQuantity"`
	UnitMeasure     string `json:"UnitMeasure"`
	ReasonTransfer  string `json:"ReasonTransfer"`
	Remarks         string `json:"Remarks"`
	Approver        string `json:"Approver"`
	Status          string `json:"Status"`
}

func (f TransferFields) apply(rec *entity.TransferRecord) {
	rec.DateTransfer = f.DateTransfer
	rec.RequestedBy = f.RequestedBy
	rec.FromLocation = f.FromLocation
	rec.ToLocation = f.ToLocation
	rec.ProductSKU = f.ProductSKU
	rec.ProductName = f.ProductName
	rec.ProductQuantity = f.ProductQuantity
	rec.UnitMeasure = f.UnitMeasure
	rec.ReasonTransfer = f.ReasonTransfer
	rec.Remarks = f.Remarks
	rec.Approver = f.Approver
	rec.Status = f.Status
}

func (s *TransferService) Create(ctx context.Context, fields TransferFields) (*entity.TransferRecord, error) {
	rec := &entity.TransferRecord{ID: uuid.New().String()}
	fields.apply(rec)

	rec.ReferenceNumber = fields.ReferenceNumber
	if rec.ReferenceNumber == "" {
		rec.ReferenceNumber = refnum.New(refnum.PrefixTransfer)
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("创建调拨单失败: %w", err)
	}
	return rec, nil
}

// Update 整单替换；参考号保留原值
func (s *TransferService) Update(ctx context.Context, id string, fields TransferFields) (*entity.TransferRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("更新调拨单失败: %w", err)
	}
	return rec, nil
}

func (s *TransferService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TransferService) List(ctx context.Context, params repository.TransferListParams) ([]entity.TransferRecord, int64, error) {
	return s.repo.List(ctx, params)
}

// LookupProduct 调拨表单按商品名带出库存信息
func (s *TransferService) LookupProduct(ctx context.Context, name string) (*entity.InventoryRecord, error) {
	return s.inventoryRepo.FindByProductName(ctx, name)
}

func (s *TransferService) ListProductNames(ctx context.Context) ([]string, error) {
	return s.inventoryRepo.ListProductNames(ctx)
}
