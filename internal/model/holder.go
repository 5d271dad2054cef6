package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HolderKind is the closed set of rights-holder types
type HolderKind string

const (
	KindIndividual HolderKind = "INDIVIDUAL"
	KindCompany    HolderKind = "COMPANY"
	KindPublicBody HolderKind = "PUBLIC_BODY"
)

// IsValid reports whether the kind belongs to the closed enumeration
func (k HolderKind) IsValid() bool {
	switch k {
	case KindIndividual, KindCompany, KindPublicBody:
		return true
	}
	return false
}

// Holder is a rights-holder (titolare) owning one or more patents
type Holder struct {
	gorm.Model
	Name      string            `gorm:"column:name;not null;index"`
	Kind      HolderKind        `gorm:"column:kind;type:varchar(32);not null;index"`
	TaxCode   string            `gorm:"column:tax_code"`
	VATNumber string            `gorm:"column:vat_number"`
	Address   string            `gorm:"column:address"`
	City      string            `gorm:"column:city"`
	Country   string            `gorm:"column:country"`
	Email     string            `gorm:"column:email"`
	Phone     string            `gorm:"column:phone"`
	Active    bool              `gorm:"column:active;default:true;not null"`
	Metadata  datatypes.JSONMap `gorm:"column:metadata"`
	Patents   []Patent          `gorm:"many2many:patent_holders;"`
}
