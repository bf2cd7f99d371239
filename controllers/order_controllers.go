package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jmedinamuriega/shop-api/models"
	"github.com/jmedinamuriega/shop-api/serializers"
	"github.com/jmedinamuriega/shop-api/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type placeOrderRequest struct {
	CustomerID *uint  `json:"customer_id"`
	ProductIDs []uint `json:"product_ids" binding:"required"`
}

// PlaceOrder (POST /orders). Every product id is resolved inside the
// transaction before the order row is written, so a missing product fails
// the whole request with 404 and leaves no order or join rows behind.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if req.CustomerID != nil {
			var customer models.Customer
			if err := tx.First(&customer, *req.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCustomerNotFound
				}
				return err
			}
		}

		seen := make(map[uint]bool, len(req.ProductIDs))
		products := make([]models.Product, 0, len(req.ProductIDs))
		for _, productID := range req.ProductIDs {
			if seen[productID] {
				return fmt.Errorf("%w: id %d", ErrDuplicateProduct, productID)
			}
			seen[productID] = true

			var product models.Product
			if err := tx.First(&product, productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
				}
				return err
			}
			products = append(products, product)
		}

		order = models.Order{
			Date:       datatypes.Date(time.Now()),
			CustomerID: req.CustomerID,
			Products:   products,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.NewOrder(order))
}

// GetOrderByID (GET /orders/:order_id)
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	preload := func(db *gorm.DB) *gorm.DB { return db.Order("products.id") }
	if err := oc.DB.Preload("Products", preload).First(&order, id).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewOrder(order))
}

// CancelOrder (DELETE /orders/:order_id) removes the order and its
// order_product rows in one transaction.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&order).Association("Products").Clear(); err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "order canceled")
}
