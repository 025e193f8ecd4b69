package entity

import (
	"time"
)

// ReorderStatus 补货提醒状态
const (
	ReorderStatusActive       = "Active"
	ReorderStatusAcknowledged = "Acknowledged"
	ReorderStatusOrdered      = "Ordered"
)

// ReorderRecord 补货提醒
//
// LeadTime 存的是目标到货时间点（绝对时间），不是时长。
type ReorderRecord struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"ReferenceNumber" gorm:"size:50;not null;index"`
	ProductSKU      string     `json:"ProductSKU" gorm:"size:64;index"`
	ProductName     string     `json:"ProductName" gorm:"size:200"`
	CurrentStock    string     `json:"CurrentStock" gorm:"size:32"`
	ReorderLevel    string     `json:"ReorderLevel" gorm:"size:32"`
	SupplierName    string     `json:"SupplierName" gorm:"size:200;index"`
	LastOrderDate   string     `json:"LastOrderDate" gorm:"size:30"`
	LeadTime        string     `json:"LeadTime" gorm:"size:30"`
	ReorderQTY      string     `json:"ReorderQTY" gorm:"size:32"`
	Status          string     `json:"Status" gorm:"size:30;not null;default:Active;index"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (ReorderRecord) TableName() string {
	return "wms_reorder_records"
}
