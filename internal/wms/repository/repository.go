package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories WMS仓库集合
type Repositories struct {
	Receiving     *ReceivingRepository
	Inventory     *InventoryRepository
	Reorder       *ReorderRepository
	PurchaseOrder *PurchaseOrderRepository
	Transfer      *TransferRepository
	StockOut      *StockOutRepository
	Supplier      *SupplierRepository
}

// NewRepositories 创建WMS仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Receiving:     NewReceivingRepository(db),
		Inventory:     NewInventoryRepository(db),
		Reorder:       NewReorderRepository(db),
		PurchaseOrder: NewPurchaseOrderRepository(db),
		Transfer:      NewTransferRepository(db),
		StockOut:      NewStockOutRepository(db),
		Supplier:      NewSupplierRepository(db),
	}
}
