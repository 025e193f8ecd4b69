package entity

import (
	"time"
)

// SupplierStatus 供应商状态
const (
	SupplierStatusActive      = "Active"
	SupplierStatusInactive    = "Inactive"
	SupplierStatusBlacklisted = "Blacklisted"
)

// SupplierRecord 供应商档案
//
// 其他单据通过 SupplierName 软关联，删除供应商不会级联处理引用方。
type SupplierRecord struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"ReferenceNumber" gorm:"size:50;not null;index"`
	SupplierName    string     `json:"SupplierName" gorm:"size:200;not null;index"`
	ContactPerson   string     `json:"ContactPerson" gorm:"size:100"`
	EmailAddress    string     `json:"EmailAddress" gorm:"size:100"`
	PhoneNumber     string     `json:"PhoneNumber" gorm:"size:30"`
	Address         string     `json:"Address" gorm:"size:500"`
	Categories      string     `json:"Categories" gorm:"size:200"`
	ProductOffered  string     `json:"ProductOffered" gorm:"type:text"`
	BusinessNumber  string     `json:"BusinessNumber" gorm:"size:64"`
	PaymentTerms    string     `json:"PaymentTerms" gorm:"size:100"`
	BankDetails     string     `json:"BankDetails" gorm:"size:200"`
	Remarks         string     `json:"Remarks" gorm:"type:text"`
	Status          string     `json:"Status" gorm:"size:30;not null;default:Active;index"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (SupplierRecord) TableName() string {
	return "wms_suppliers"
}
