package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmedinamuriega/shop-api/models"
	"github.com/jmedinamuriega/shop-api/serializers"
	"github.com/jmedinamuriega/shop-api/utils"
)

type CustomerAccountController struct {
	DB *gorm.DB
}

func NewCustomerAccountController(db *gorm.DB) *CustomerAccountController {
	return &CustomerAccountController{DB: db}
}

type createCustomerAccountRequest struct {
	Username   string `json:"username" binding:"required"`
	CustomerID *uint  `json:"customer_id" binding:"required"`
}

type updateCustomerAccountRequest struct {
	Username *string `json:"username"`
}

// CreateCustomerAccount (POST /customer_accounts). The customer must exist
// and may only hold one account; username collisions and second accounts
// come back as 409 from the unique indexes.
func (ac *CustomerAccountController) CreateCustomerAccount(c *gin.Context) {
	var req createCustomerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var account models.CustomerAccount
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, *req.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		account = models.CustomerAccount{
			Username:   req.Username,
			CustomerID: customer.ID,
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.NewCustomerAccount(account))
}

// GetCustomerAccountByID (GET /customer_accounts/:account_id)
func (ac *CustomerAccountController) GetCustomerAccountByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("account_id"))

	var account models.CustomerAccount
	if err := ac.DB.First(&account, id).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewCustomerAccount(account))
}

// UpdateCustomerAccount (PUT /customer_accounts/:account_id). Only the
// username is mutable; the customer link is fixed at creation.
func (ac *CustomerAccountController) UpdateCustomerAccount(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("account_id"))

	var req updateCustomerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var account models.CustomerAccount
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&account, id).Error; err != nil {
			return err
		}
		if req.Username != nil {
			account.Username = *req.Username
		}
		return tx.Save(&account).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewCustomerAccount(account))
}

// DeleteCustomerAccount (DELETE /customer_accounts/:account_id)
func (ac *CustomerAccountController) DeleteCustomerAccount(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("account_id"))

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		var account models.CustomerAccount
		if err := tx.First(&account, id).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "customer account removed")
}
