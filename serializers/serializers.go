// Package serializers projects models onto the fixed field sets the API
// exposes. Handlers never hand a model straight to the JSON encoder; they go
// through these projections so the wire shape stays stable even when the
// models grow columns or relations.
package serializers

import (
	"time"

	"github.com/jmedinamuriega/shop-api/models"
)

const dateLayout = "2006-01-02"

type Customer struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewCustomer(m models.Customer) Customer {
	return Customer{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Phone: m.Phone,
	}
}

func NewCustomers(ms []models.Customer) []Customer {
	out := make([]Customer, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewCustomer(m))
	}
	return out
}

type CustomerAccount struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	CustomerID uint   `json:"customer_id"`
}

func NewCustomerAccount(m models.CustomerAccount) CustomerAccount {
	return CustomerAccount{
		ID:         m.ID,
		Username:   m.Username,
		CustomerID: m.CustomerID,
	}
}

type Product struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func NewProduct(m models.Product) Product {
	return Product{
		ID:    m.ID,
		Name:  m.Name,
		Price: m.Price,
		Stock: m.Stock,
	}
}

func NewProducts(ms []models.Product) []Product {
	out := make([]Product, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewProduct(m))
	}
	return out
}

// Order serializes its products inline. Products is always an array, never
// null, and CustomerID is null for orders placed without a customer.
type Order struct {
	ID         uint      `json:"id"`
	Date       string    `json:"date"`
	CustomerID *uint     `json:"customer_id"`
	Products   []Product `json:"products"`
}

func NewOrder(m models.Order) Order {
	return Order{
		ID:         m.ID,
		Date:       time.Time(m.Date).Format(dateLayout),
		CustomerID: m.CustomerID,
		Products:   NewProducts(m.Products),
	}
}

func NewOrders(ms []models.Order) []Order {
	out := make([]Order, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewOrder(m))
	}
	return out
}
