package models

import "gorm.io/datatypes"

// Order may exist without a customer, so CustomerID is nullable. The
// order_product join table carries a composite primary key (order_id,
// product_id); attaching the same product twice violates it.
type Order struct {
	ID         uint           `gorm:"primaryKey"`
	Date       datatypes.Date `gorm:"not null"`
	CustomerID *uint          `gorm:"index"`
	Customer   *Customer      `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Products   []Product      `gorm:"many2many:order_product"`
}
