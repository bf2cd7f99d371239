package models

type Customer struct {
	ID      uint             `gorm:"primaryKey"`
	Name    string           `gorm:"type:varchar(255);not null"`
	Email   string           `gorm:"type:varchar(155)"`
	Phone   string           `gorm:"type:varchar(15)"`
	Orders  []Order          `gorm:"foreignKey:CustomerID"`
	Account *CustomerAccount `gorm:"foreignKey:CustomerID"`
}
