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

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

type createProductRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Stock *int     `json:"stock" binding:"required"`
}

type updateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

// GetAllProducts (GET /products) lists every product in insertion order.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Order("id").Find(&products).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewProducts(products))
}

// CreateProduct (POST /products)
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product := models.Product{
		Name:  req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.NewProduct(product))
}

// GetProductByID (GET /products/:product_id)
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewProduct(product))
}

// UpdateProduct (PUT /products/:product_id) applies only the fields present
// in the body.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		return tx.Save(&product).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.NewProduct(product))
}

// DeleteProduct (DELETE /products/:product_id) clears the product's
// order_product rows in the same transaction so no dangling pairs remain.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&product).Association("Orders").Clear(); err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "product removed")
}
