package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/refnum"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	// ErrStatusNotPostable 收货单不在 Approved 状态，禁止过账
	ErrStatusNotPostable = errors.New("receiving record is not approved for posting")
)

// ReceivingService 收货单服务，含收货→库存过账流程
type ReceivingService struct {
	repo          *repository.ReceivingRepository
	inventoryRepo *repository.InventoryRepository
	poRepo        *repository.PurchaseOrderRepository
	dashboard     *DashboardService
	db            *gorm.DB
}

func NewReceivingService(
	repo *repository.ReceivingRepository,
	inventoryRepo *repository.InventoryRepository,
	poRepo *repository.PurchaseOrderRepository,
	dashboard *DashboardService,
	db *gorm.DB,
) *ReceivingService {
	return &ReceivingService{
		repo:          repo,
		inventoryRepo: inventoryRepo,
		poRepo:        poRepo,
		dashboard:     dashboard,
		db:            db,
	}
}

// ReceivingFields 收货单字段，创建与编辑共用（编辑为整单替换）
type ReceivingFields struct {
	ReferenceNumber    string `json:"ReferenceNumber"`
	DateReceived       string `json:"DateReceived"`
	PONumber           string `json:"PONumber"`
	ReceivedBy         string `json:"ReceivedBy"`
	SupplierName       string `json:"SupplierName"`
	WarehouseLocation  string `json:"WarehouseLocation"`
	ProductSKU         string `json:"ProductSKU" binding:"required"`
	ProductName        string `json:"ProductName" binding:"required"`
	ProductDescription string `json:"ProductDescription"`
	ProductQuantity    string `json:"ProductQuantity"`
	ProductBoxes       string `json:"ProductBoxes"`
	ProductMeasure     string `json:"ProductMeasure"`
	BatchNumber        string `json:"BatchNumber"`
	ExpirationDate     string `json:"ExpirationDate"`
	Remarks            string `json:"Remarks"`
	ReceivedStatus     string `json:"ReceivedStatus"`
}

func (f ReceivingFields) apply(rec *entity.ReceivingRecord) {
	rec.DateReceived = f.DateReceived
	rec.PONumber = f.PONumber
	rec.ReceivedBy = f.ReceivedBy
	rec.SupplierName = f.SupplierName
	rec.WarehouseLocation = f.WarehouseLocation
	rec.ProductSKU = f.ProductSKU
	rec.ProductName = f.ProductName
	rec.ProductDescription = f.ProductDescription
	rec.ProductQuantity = f.ProductQuantity
	rec.ProductBoxes = f.ProductBoxes
	rec.ProductMeasure = f.ProductMeasure
	rec.BatchNumber = f.BatchNumber
	rec.ExpirationDate = f.ExpirationDate
	rec.Remarks = f.Remarks
	rec.ReceivedStatus = f.ReceivedStatus
}

func (s *ReceivingService) Create(ctx context.Context, fields ReceivingFields) (*entity.ReceivingRecord, error) {
	rec := &entity.ReceivingRecord{ID: uuid.New().String()}
	fields.apply(rec)

	// 参考号仅在新建时生成一次
	rec.ReferenceNumber = fields.ReferenceNumber
	if rec.ReferenceNumber == "" {
		rec.ReferenceNumber = refnum.New(refnum.PrefixReceiving)
	}
	if rec.ReceivedStatus == "" {
		rec.ReceivedStatus = entity.ReceivedStatusPending
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("创建收货单失败: %w", err)
	}
	return rec, nil
}

// Update 整单替换；参考号保留原值，不随编辑重新生成
func (s *ReceivingService) Update(ctx context.Context, id string, fields ReceivingFields) (*entity.ReceivingRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields.apply(rec)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("更新收货单失败: %w", err)
	}
	return rec, nil
}

func (s *ReceivingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ReceivingService) List(ctx context.Context, params repository.ReceivingListParams) ([]entity.ReceivingRecord, int64, error) {
	return s.repo.List(ctx, params)
}

// UpdateStatus 质检决定：Pending Inspection → Approved / Rejected。
// 状态值本身不做枚举校验，沿用上游宽松约定。
func (s *ReceivingService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

// LookupPO 按PO号查采购单；PO号为空时返回全部PO号列表
func (s *ReceivingService) LookupPO(ctx context.Context, poNumber string) (*entity.PurchaseOrderRecord, error) {
	return s.poRepo.FindByPONumber(ctx, poNumber)
}

func (s *ReceivingService) ListPONumbers(ctx context.Context) ([]string, error) {
	return s.poRepo.ListPONumbers(ctx)
}

// PostToInventory 过账：把 Approved 的收货单转成库存记录并置为 Posted。
//
// 单事务完成两步写入，收货行加行锁后校验状态；库存记录带唯一的
// SourceReceivingID，并发重复提交时第二个事务在插入处失败回滚，
// 已 Posted 的单据按幂等重放处理，直接返回已生成的库存记录。
func (s *ReceivingService) PostToInventory(ctx context.Context, receivingID string) (*entity.InventoryRecord, error) {
	var posted *entity.InventoryRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.repo.GetByIDForUpdate(tx, receivingID)
		if err != nil {
			return err
		}

		if rec.ReceivedStatus == entity.ReceivedStatusPosted {
			existing, err := s.inventoryRepo.GetBySourceReceivingID(ctx, receivingID)
			if err != nil {
				return fmt.Errorf("收货单已过账但找不到对应库存记录: %w", err)
			}
			posted = existing
			return nil
		}
		if !rec.CanPost() {
			return fmt.Errorf("%w: %s", ErrStatusNotPostable, rec.ReceivedStatus)
		}

		sourceID := rec.ID
		inv := &entity.InventoryRecord{
			ID:                  uuid.New().String(),
			ReferenceNumber:     rec.ReferenceNumber,
			ProductName:         rec.ProductName,
			ProductSKU:          rec.ProductSKU,
			ProductDescription:  rec.ProductDescription,
			ProductQuantity:     rec.ProductQuantity,
			ProductCostPrice:    "0",
			ProductSellingPrice: "0",
			ProductStatus:       entity.ProductStatusAvailable,
			SourceReceivingID:   &sourceID,
		}
		if err := s.inventoryRepo.CreateInTx(tx, inv); err != nil {
			return fmt.Errorf("写入库存记录失败: %w", err)
		}

		rec.ReceivedStatus = entity.ReceivedStatusPosted
		if err := tx.Save(rec).Error; err != nil {
			return fmt.Errorf("更新收货状态失败: %w", err)
		}

		posted = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dashboard.InvalidateCache(ctx)
	return posted, nil
}

// Export 导出收货台账
func (s *ReceivingService) Export(ctx context.Context, params repository.ReceivingListParams) (*excelize.File, error) {
	records, err := s.repo.ListAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("读取收货记录失败: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Received Products"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Reference Number", "Date Received", "PO Number", "Received By",
		"Supplier Name", "Warehouse Location", "Product SKU", "Product Name",
		"Product Description", "Product Quantity", "Product Boxes",
		"Product Measure", "Batch Number", "Expiration Date", "Remarks",
		"Received Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, rec := range records {
		values := []string{
			rec.ReferenceNumber, rec.DateReceived, rec.PONumber, rec.ReceivedBy,
			rec.SupplierName, rec.WarehouseLocation, rec.ProductSKU, rec.ProductName,
			rec.ProductDescription, rec.ProductQuantity, rec.ProductBoxes,
			rec.ProductMeasure, rec.BatchNumber, rec.ExpirationDate, rec.Remarks,
			rec.ReceivedStatus,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
