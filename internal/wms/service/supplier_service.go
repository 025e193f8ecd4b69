package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/refnum"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/google/uuid"
)

// SupplierService 供应商档案服务
type SupplierService struct {
	repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// SupplierFields 供应商字段，创建与编辑共用
type SupplierFields struct {
	ReferenceNumber string `json:"ReferenceNumber"`
	SupplierName    string `json:"SupplierName" binding:"required"`
	ContactPerson   string `json:"ContactPerson"`
	EmailAddress    string `json:"EmailAddress"`
	PhoneNumber     string `json:"PhoneNumber"`
	Address         string `json:"Address"`
	Categories      string `json:"Categories"`
	ProductOffered  string `json:"ProductOffered"`
	BusinessNumber  string `json:"BusinessNumber"`
	PaymentTerms    string `json:"PaymentTerms"`
	BankDetails     string `json:"BankDetails"`
	Remarks         string `json:"Remarks"`
	Status          string `json:"Status"`
}

func (f SupplierFields) apply(rec *entity.SupplierRecord) {
	rec.SupplierName = f.SupplierName
	rec.ContactPerson = f.ContactPerson
	rec.EmailAddress = f.EmailAddress
	rec.PhoneNumber = f.PhoneNumber
	rec.Address = f.Address
	rec.Categories = f.Categories
	rec.ProductOffered = f.ProductOffered
	rec.BusinessNumber = f.BusinessNumber
	rec.PaymentTerms = f.PaymentTerms
	rec.BankDetails = f.BankDetails
	rec.Remarks = f.Remarks
	rec.Status = f.Status
}

func (s *SupplierService) Create(ctx context.Context, fields SupplierFields) (*entity.SupplierRecord, error) {
	rec := &entity.SupplierRecord{ID: uuid.New().String()}
	fields.apply(rec)

	rec.ReferenceNumber = fields.ReferenceNumber
	if rec.ReferenceNumber == "" {
		rec.ReferenceNumber = refnum.New(refnum.PrefixSupplier)
	}
	if rec.Status == "" {
		rec.Status = entity.SupplierStatusActive
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("创建供应商失败: %w", err)
	}
	return rec, nil
}

// Update 整单替换；参考号保留原值
func (s *SupplierService) Update(ctx context.Context, id string, fields SupplierFields) (*entity.SupplierRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("更新供应商失败: %w", err)
	}
	return rec, nil
}

// Delete 删除供应商；引用它的采购单/补货单不做级联处理
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *SupplierService) List(ctx context.Context, params repository.SupplierListParams) ([]entity.SupplierRecord, int64, error) {
	return s.repo.List(ctx, params)
}
