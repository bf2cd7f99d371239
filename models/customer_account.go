package models

// CustomerAccount is the login identity attached to a customer. The unique
// index on CustomerID keeps the relation one-to-one at the storage layer.
type CustomerAccount struct {
	ID         uint     `gorm:"primaryKey"`
	Username   string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	CustomerID uint     `gorm:"not null;uniqueIndex"`
	Customer   Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
