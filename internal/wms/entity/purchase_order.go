package entity

import (
	"time"
)

// DeliveryStatus 采购单配送状态
const (
	DeliveryStatusPending        = "Pending"
	DeliveryStatusProcessing     = "Processing"
	DeliveryStatusShipped        = "Shipped"
	DeliveryStatusInTransit      = "In Transit"
	DeliveryStatusOutForDelivery = "Out for Delivery"
	DeliveryStatusDelivered      = "Delivered"
	DeliveryStatusPartial        = "Partially Delivered"
	DeliveryStatusFailed         = "Failed Delivery"
	DeliveryStatusReturned       = "Returned"
)

// PurchaseOrderRecord 采购订单
type PurchaseOrderRecord struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"ReferenceNumber" gorm:"size:50;not null;index"`
	PONumber        string     `json:"PONumber" gorm:"size:50;index"`
	PODate          string     `json:"PODate" gorm:"size:30"`
	BuyerName       string     `json:"BuyerName" gorm:"size:100"`
	SupplierName    string     `json:"SupplierName" gorm:"size:200;index"`
	ItemName        string     `json:"ItemName" gorm:"size:200"`
	Quantity        string     `json:"Quantity" gorm:"size:32"`
	UnitPrice       string     `json:"UnitPrice" gorm:"size:32"`
	PaymentTerms    string     `json:"PaymentTerms" gorm:"size:100"`
	DeliveryAddress string     `json:"DeliveryAddress" gorm:"size:500"`
	DeliveryDate    string     `json:"DeliveryDate" gorm:"size:30"`
	DeliveryStatus  string     `json:"DeliveryStatus" gorm:"size:30;not null;default:Pending;index"`
	// DeliveryRemarks 在 Failed Delivery / Returned 时由前端要求填写，服务端不强校验
	DeliveryRemarks string     `json:"DeliveryRemarks" gorm:"type:text"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (PurchaseOrderRecord) TableName() string {
	return "wms_purchase_orders"
}
