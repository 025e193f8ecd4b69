package entity

import (
	"time"
)

// ReceivedStatus 收货单状态
//
// Pending Inspection → Approved / Rejected 由质检决定；
// Approved → Posted 由过账流程写入，且不可逆。
const (
	ReceivedStatusPending  = "Pending Inspection"
	ReceivedStatusApproved = "Approved"
	ReceivedStatusRejected = "Rejected"
	ReceivedStatusPosted   = "Posted"
)

// ReceivingRecord 收货记录
type ReceivingRecord struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferenceNumber    string     `json:"ReferenceNumber" gorm:"size:50;not null;index"`
	DateReceived       string     `json:"DateReceived" gorm:"size:30"`
	PONumber           string     `json:"PONumber" gorm:"size:50;index"`
	ReceivedBy         string     `json:"ReceivedBy" gorm:"size:100"`
	SupplierName       string     `json:"SupplierName" gorm:"size:200;index"`
	WarehouseLocation  string     `json:"WarehouseLocation" gorm:"size:100"`
	ProductSKU         string     `json:"ProductSKU" gorm:"size:64;index"`
	ProductName        string     `json:"ProductName" gorm:"size:200"`
	ProductDescription string     `json:"ProductDescription" gorm:"type:text"`
	ProductQuantity    string     `json:"ProductQuantity" gorm:"size:32"`
	ProductBoxes       string     `json:"ProductBoxes" gorm:"size:32"`
	ProductMeasure     string     `json:"ProductMeasure" gorm:"size:32"`
	BatchNumber        string     `json:"BatchNumber" gorm:"size:64"`
	ExpirationDate     string     `json:"ExpirationDate" gorm:"size:30"`
	Remarks            string     `json:"Remarks" gorm:"type:text"`
	ReceivedStatus     string     `json:"ReceivedStatus" gorm:"size:30;not null;default:Pending Inspection;index"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (ReceivingRecord) TableName() string {
	return "wms_receiving_records"
}

// CanPost 仅 Approved 状态允许过账
func (r *ReceivingRecord) CanPost() bool {
	return r.ReceivedStatus == ReceivedStatusApproved
}
