package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmedinamuriega/shop-api/models"
	"github.com/jmedinamuriega/shop-api/serializers"
	"github.com/jmedinamuriega/shop-api/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

type createCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type updateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// CreateCustomer (POST /customers)
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := cc.DB.Create(&customer).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.NewCustomer(customer))
}

// GetCustomerByID (GET /customers/:customer_id)
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("customer_id"))

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewCustomer(customer))
}

// UpdateCustomer (PUT /customers/:customer_id) applies only the fields
// present in the body; omitted fields keep their stored values.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("customer_id"))

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, id).Error; err != nil {
			return err
		}
		if req.Name != nil {
			customer.Name = *req.Name
		}
		if req.Email != nil {
			customer.Email = *req.Email
		}
		if req.Phone != nil {
			customer.Phone = *req.Phone
		}
		return tx.Save(&customer).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewCustomer(customer))
}

// DeleteCustomer (DELETE /customers/:customer_id). Deletion is restricted:
// a customer that still owns orders or an account is not removed, and the
// request fails with 409 until the dependents are deleted first.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("customer_id"))

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			return err
		}

		var orders int64
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", customer.ID).Count(&orders).Error; err != nil {
			return err
		}
		var accounts int64
		if err := tx.Model(&models.CustomerAccount{}).Where("customer_id = ?", customer.ID).Count(&accounts).Error; err != nil {
			return err
		}
		if orders > 0 || accounts > 0 {
			return ErrCustomerReferenced
		}

		return tx.Delete(&customer).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "customer removed")
}
