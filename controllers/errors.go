package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmedinamuriega/shop-api/utils"
)

var (
	// ErrCustomerNotFound marks a request body referencing a customer id
	// that does not exist. A bad reference in the payload is a client data
	// error, not a missing resource.
	ErrCustomerNotFound = errors.New("customer does not exist")

	// ErrProductNotFound aborts order creation when any product id in the
	// request cannot be resolved.
	ErrProductNotFound = errors.New("product not found")

	// ErrCustomerReferenced blocks customer deletion while orders or an
	// account still point at the row.
	ErrCustomerReferenced = errors.New("customer still has orders or an account")

	// ErrDuplicateProduct rejects the same product id appearing twice in
	// one order request, matching the join table's composite key.
	ErrDuplicateProduct = errors.New("product already attached to order")
)

// respondStorageError maps errors coming out of a transaction onto the
// API's status codes. Anything unrecognized is a storage fault and
// surfaces as 500.
func respondStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrProductNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, ErrCustomerReferenced),
		errors.Is(err, ErrDuplicateProduct):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, ErrCustomerNotFound):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
