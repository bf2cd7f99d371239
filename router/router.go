package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmedinamuriega/shop-api/controllers"
	"github.com/jmedinamuriega/shop-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddleware())

	customerCtrl := controllers.NewCustomerController(db)
	accountCtrl := controllers.NewCustomerAccountController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	r.PUT("/customers/:customer_id", customerCtrl.UpdateCustomer)
	r.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

	r.POST("/customer_accounts", accountCtrl.CreateCustomerAccount)
	r.GET("/customer_accounts/:account_id", accountCtrl.GetCustomerAccountByID)
	r.PUT("/customer_accounts/:account_id", accountCtrl.UpdateCustomerAccount)
	r.DELETE("/customer_accounts/:account_id", accountCtrl.DeleteCustomerAccount)

	r.GET("/products", productCtrl.GetAllProducts)
	r.POST("/products", productCtrl.CreateProduct)
	r.GET("/products/:product_id", productCtrl.GetProductByID)
	r.PUT("/products/:product_id", productCtrl.UpdateProduct)
	r.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	r.POST("/orders", orderCtrl.PlaceOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.DELETE("/orders/:order_id", orderCtrl.CancelOrder)

	return r
}
