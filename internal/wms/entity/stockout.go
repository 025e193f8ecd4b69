package entity

import (
	"time"
)

// StockOutRecord 出库单
type StockOutRecord struct {
	ID                      string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferenceNumber         string     `json:"ReferenceNumber" gorm:"size:50;not null;index"`
	DateIssuance            string     `json:"DateIssuance" gorm:"size:30"`
	IssuedBy                string     `json:"IssuedBy" gorm:"size:100"`
	Recipient               string     `json:"Recipient" gorm:"size:100"`
	Purpose                 string     `json:"Purpose" gorm:"size:100"`
	ProductSKU              string     `json:"ProductSKU" gorm:"size:64;index"`
	ProductName             string     `json:"ProductName" gorm:"size:200"`
	ProductQuantity         string     `json:"ProductQuantity" gorm:"size:32"`
	UnitMeasure             string     `json:"UnitMeasure" gorm:"size:32"`
	ReferenceDocumentNumber string     `json:"ReferenceDocumentNumber" gorm:"size:64"`
	Remarks                 string     `json:"Remarks" gorm:"type:text"`
	Status                  string     `json:"Status" gorm:"size:30;index"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
	DeletedAt               *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (StockOutRecord) TableName() string {
	return "wms_stockout_records"
}
