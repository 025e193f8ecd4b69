package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/refnum"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/google/uuid"
)

// StockOutService 出库单服务
type StockOutService struct {
	repo *repository.StockOutRepository
}

func NewStockOutService(repo *repository.StockOutRepository) *StockOutService {
	return &StockOutService{repo: repo}
}

// StockOutFields 出库字段，创建与编辑共用
type StockOutFields struct {
	ReferenceNumber         string `json:"ReferenceNumber"`
	DateIssuance            string `json:"DateIssuance"`
	IssuedBy                string `json:"IssuedBy"`
	Recipient               string `json:"Recipient"`
	Purpose                 string `json:"Purpose"`
	ProductSKU              string `json:"ProductSKU" binding:"required"`
	ProductName             string `json:"ProductName" binding:"required"`
	ProductQuantity         string `json:"ProductQuantity"`
	UnitMeasure             string `json:"UnitMeasure"`
	ReferenceDocumentNumber string `json:"ReferenceDocumentNumber"`
	Remarks                 string `json:"Remarks"`
	Status                  string `json:"Status"`
}

func (f StockOutFields) apply(rec *entity.StockOutRecord) {
	rec.DateIssuance = f.DateIssuance
	rec.IssuedBy = f.IssuedBy
	rec.Recipient = f.Recipient
	rec.Purpose = f.Purpose
	rec.ProductSKU = f.ProductSKU
	rec.ProductName = f.ProductName
	rec.ProductQuantity = f.ProductQuantity
	rec.UnitMeasure = f.UnitMeasure
	rec.ReferenceDocumentNumber = f.ReferenceDocumentNumber
	rec.Remarks = f.Remarks
	rec.Status = f.Status
}

func (s *StockOutService) Create(ctx context.Context, fields StockOutFields) (*entity.StockOutRecord, error) {
	rec := &entity.StockOutRecord{ID: uuid.New().String()}
	fields.apply(rec)

	rec.ReferenceNumber = fields.ReferenceNumber
	if rec.ReferenceNumber == "" {
		rec.ReferenceNumber = refnum.New(refnum.PrefixStockOut)
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("创建出库单失败: %w", err)
	}
	return rec, nil
}

// Update 整单替换；参考号保留原值
func (s *StockOutService) Update(ctx context.Context, id string, fields StockOutFields) (*entity.StockOutRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("更新出库单失败: %w", err)
	}
	return rec, nil
}

func (s *StockOutService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *StockOutService) List(ctx context.Context, params repository.StockOutListParams) ([]entity.StockOutRecord, int64, error) {
	return s.repo.List(ctx, params)
}
