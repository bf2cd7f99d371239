package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmedinamuriega/shop-api/models"
)

func TestCustomerAccountCRUD(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.Customer{Name: "Ana"})

	w := doRequest(t, r, "POST", "/customer_accounts", map[string]interface{}{
		"username":    "ana",
		"customer_id": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.EqualValues(t, 1, created["id"])
	assert.Equal(t, "ana", created["username"])
	assert.EqualValues(t, 1, created["customer_id"])

	w = doRequest(t, r, "GET", "/customer_accounts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana", decodeBody(t, w)["username"])

	w = doRequest(t, r, "PUT", "/customer_accounts/1", map[string]interface{}{
		"username": "ana_v2",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.Equal(t, "ana_v2", updated["username"])
	assert.EqualValues(t, 1, updated["customer_id"])

	w = doRequest(t, r, "DELETE", "/customer_accounts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "customer account removed", decodeBody(t, w)["message"])

	w = doRequest(t, r, "GET", "/customer_accounts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.Customer{Name: "Ana"})
	db.Create(&models.Customer{Name: "Bruno"})

	w := doRequest(t, r, "POST", "/customer_accounts", map[string]interface{}{
		"username":    "ana",
		"customer_id": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, "POST", "/customer_accounts", map[string]interface{}{
		"username":    "ana",
		"customer_id": 2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")

	var count int64
	db.Model(&models.CustomerAccount{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSecondAccountForCustomerRejected(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.Customer{Name: "Ana"})

	w := doRequest(t, r, "POST", "/customer_accounts", map[string]interface{}{
		"username":    "ana",
		"customer_id": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, "POST", "/customer_accounts", map[string]interface{}{
		"username":    "ana_backup",
		"customer_id": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAccountValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	// Missing customer_id
	w := doRequest(t, r, "POST", "/customer_accounts", map[string]interface{}{
		"username": "ana",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown customer
	w = doRequest(t, r, "POST", "/customer_accounts", map[string]interface{}{
		"username":    "ana",
		"customer_id": 42,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}
