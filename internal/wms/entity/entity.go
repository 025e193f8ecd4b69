package entity

import "gorm.io/gorm"

// AutoMigrate 自动迁移所有WMS表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 主数据
		&SupplierRecord{},

		// 采购与收货
		&PurchaseOrderRecord{},
		&ReceivingRecord{},

		// 库存
		&InventoryRecord{},
		&TransferRecord{},
		&StockOutRecord{},

		// 补货
		&ReorderRecord{},
	)
}
