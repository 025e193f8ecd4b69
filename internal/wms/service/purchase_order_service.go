package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/refnum"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/google/uuid"
)

// PurchaseOrderService 采购订单服务
type PurchaseOrderService struct {
	repo *repository.PurchaseOrderRepository
}

func NewPurchaseOrderService(repo *repository.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{repo: repo}
}

// PurchaseOrderFields 采购单字段，创建与编辑共用
type PurchaseOrderFields struct {
	ReferenceNumber string `json:"ReferenceNumber"`
	PONumber        string `json:"PONumber" binding:"required"`
	PODate          string `json:"PODate"`
	BuyerName       string `json:"BuyerName"`
	SupplierName    string `json:"SupplierName" binding:"required"`
	ItemName        string `json:"ItemName"`
	Quantity        string `json:"Quantity"`
	UnitPrice       string `json:"UnitPrice"`
	PaymentTerms    string `json:"PaymentTerms"`
	DeliveryAddress string `json:"DeliveryAddress"`
	DeliveryDate    string `json:"DeliveryDate"`
	DeliveryStatus  string `json:"DeliveryStatus"`
	DeliveryRemarks string `json:"DeliveryRemarks"`
}

func (f PurchaseOrderFields) apply(rec *entity.PurchaseOrderRecord) {
	rec.PONumber = f.PONumber
	rec.PODate = f.PODate
	rec.BuyerName = f.BuyerName
	rec.SupplierName = f.SupplierName
	rec.ItemName = f.ItemName
	rec.Quantity = f.Quantity
	rec.UnitPrice = f.UnitPrice
	rec.PaymentTerms = f.PaymentTerms
	rec.DeliveryAddress = f.DeliveryAddress
	rec.DeliveryDate = f.DeliveryDate
	rec.DeliveryStatus = f.DeliveryStatus
	rec.DeliveryRemarks = f.DeliveryRemarks
}

func (s *PurchaseOrderService) Create(ctx context.Context, fields PurchaseOrderFields) (*entity.PurchaseOrderRecord, error) {
	rec := &entity.PurchaseOrderRecord{ID: uuid.New().String()}
	fields.apply(rec)

	rec.ReferenceNumber = fields.ReferenceNumber
	if rec.ReferenceNumber == "" {
		rec.ReferenceNumber = refnum.New(refnum.PrefixPurchaseOrder)
	}
	if rec.DeliveryStatus == "" {
		rec.DeliveryStatus = entity.DeliveryStatusPending
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("创建采购单失败: %w", err)
	}
	return rec, nil
}

// Update 整单替换；参考号保留原值
func (s *PurchaseOrderService) Update(ctx context.Context, id string, fields PurchaseOrderFields) (*entity.PurchaseOrderRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("更新采购单失败: %w", err)
	}
	return rec, nil
}

func (s *PurchaseOrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PurchaseOrderService) List(ctx context.Context, params repository.PurchaseOrderListParams) ([]entity.PurchaseOrderRecord, int64, error) {
	return s.repo.List(ctx, params)
}
