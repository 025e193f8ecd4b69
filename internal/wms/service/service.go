package service

import (
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services WMS 服务集合
type Services struct {
	Dashboard     *DashboardService
	Receiving     *ReceivingService
	Inventory     *InventoryService
	Reorder       *ReorderService
	PurchaseOrder *PurchaseOrderService
	Transfer      *TransferService
	StockOut      *StockOutService
	Supplier      *SupplierService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, db *gorm.DB) *Services {
	dashboard := NewDashboardService(repos.Inventory, repos.Reorder, rdb)
	return &Services{
		Dashboard:     dashboard,
		Receiving:     NewReceivingService(repos.Receiving, repos.Inventory, repos.PurchaseOrder, dashboard, db),
		Inventory:     NewInventoryService(repos.Inventory, dashboard),
		Reorder:       NewReorderService(repos.Reorder, repos.Supplier, dashboard),
		PurchaseOrder: NewPurchaseOrderService(repos.PurchaseOrder),
		Transfer:      NewTransferService(repos.Transfer, repos.Inventory),
		StockOut:      NewStockOutService(repos.StockOut),
		Supplier:      NewSupplierService(repos.Supplier),
	}
}
