package handler

import "github.com/bitfantasy/nimo-wms/internal/wms/service"

// Handlers WMS HTTP处理器集合
type Handlers struct {
	Dashboard     *DashboardHandler
	Receiving     *ReceivingHandler
	Inventory     *InventoryHandler
	Reorder       *ReorderHandler
	PurchaseOrder *PurchaseOrderHandler
	Transfer      *TransferHandler
	StockOut      *StockOutHandler
	Supplier      *SupplierHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Dashboard:     NewDashboardHandler(services.Dashboard),
		Receiving:     NewReceivingHandler(services.Receiving),
		Inventory:     NewInventoryHandler(services.Inventory),
		Reorder:       NewReorderHandler(services.Reorder),
		PurchaseOrder: NewPurchaseOrderHandler(services.PurchaseOrder),
		Transfer:      NewTransferHandler(services.Transfer),
		StockOut:      NewStockOutHandler(services.StockOut),
		Supplier:      NewSupplierHandler(services.Supplier),
	}
}
