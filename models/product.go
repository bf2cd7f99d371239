package models

type Product struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"type:varchar(255);not null"`
	Price  float64 `gorm:"type:decimal(10,2);not null"`
	Stock  int     `gorm:"not null;default:0"`
	Orders []Order `gorm:"many2many:order_product"`
}
