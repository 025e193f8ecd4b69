package entity

import (
	"time"
)

// ProductStatus 库存商品状态
const (
	ProductStatusAvailable = "Available"
	ProductStatusLowStock  = "Low-Stock"
	ProductStatusNoStock   = "No-Stock"
	ProductStatusDraft     = "Draft"
)

// InventoryRecord 库存记录
//
// 数量与价格沿用上游文本存储约定，聚合时按需解析（解析失败按 0 处理）。
type InventoryRecord struct {
	ID                  string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferenceNumber     string     `json:"ReferenceNumber" gorm:"size:50;not null;index"`
	ProductName         string     `json:"ProductName" gorm:"size:200;index"`
	ProductSKU          string     `json:"ProductSKU" gorm:"size:64;index"`
	ProductDescription  string     `json:"ProductDescription" gorm:"type:text"`
	ProductQuantity     string     `json:"ProductQuantity" gorm:"size:32"`
	ProductCostPrice    string     `json:"ProductCostPrice" gorm:"size:32"`
	ProductSellingPrice string     `json:"ProductSellingPrice" gorm:"size:32"`
	ProductStatus       string     `json:"ProductStatus" gorm:"size:30;not null;default:Draft;index"`
	// SourceReceivingID 过账幂等键：由收货过账创建的库存记录指回收货单，
	// 唯一索引保证同一收货单至多生成一条库存记录。
	SourceReceivingID *string    `json:"SourceReceivingID,omitempty" gorm:"type:uuid;uniqueIndex"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (InventoryRecord) TableName() string {
	return "wms_inventory_records"
}
