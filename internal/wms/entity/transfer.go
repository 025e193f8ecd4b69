package entity

import (
	"time"
)

// TransferRecord 库存调拨记录
type TransferRecord struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"ReferenceNumber" gorm:"size:50;not null;index"`
	DateTransfer    string     `json:"DateTransfer" gorm:"size:30"`
	RequestedBy     string     `json:"RequestedBy" gorm:"size:100"`
	FromLocation    string     `json:"FromLocation" gorm:"size:100"`
	ToLocation      string     `json:"ToLocation" gorm:"size:100"`
	ProductSKU      string     `json:"ProductSKU" gorm:"size:64;index"`
	ProductName     string     `json:"ProductName" gorm:"size:200"`
	ProductQuantity string     `json:"ProductQuantity" gorm:"size:32"`
	UnitMeasure     string     `json:"UnitMeasure" gorm:"size:32"`
	ReasonTransfer  string     `json:"ReasonTransfer" gorm:"size:100"`
	Remarks         string     `json:"Remarks" gorm:"type:text"`
	Approver        string     `json:"Approver" gorm:"size:100"`
	Status          string     `json:"Status" gorm:"size:30;index"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (TransferRecord) TableName() string {
	return "wms_transfer_records"
}
