package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odanga/stockledger-api/internal/application/service"
	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/infrastructure/store"
)

func newDamageRouter(t *testing.T) (*gin.Engine, *entity.Product) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	productRepo := store.NewProductRepository(st)
	damageRepo := store.NewDamageRepository(st)
	ledgerRepo := store.NewLedgerRepository(st)

	catalog := service.NewCatalogService(productRepo, 5)
	product, err := catalog.AddProduct(context.Background(), &service.AddProductInput{
		Name:          "Router X",
		Category:      enum.CategoryRouter,
		UnitPrice:     80,
		StockQuantity: 6,
	})
	require.NoError(t, err)

	h := NewDamageHandler(service.NewDamageService(damageRepo, productRepo, ledgerRepo))
	router := gin.New()
	router.POST("/damages", h.Create)
	router.GET("/damages", h.List)
	return router, product
}

func postDamage(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/damages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateDamageReportsQuantityReason(t *testing.T) {
	router, product := newDamageRouter(t)

	// zero and negative quantities must reach the quantity rule, not fail
	// as a generic malformed body
	for _, qty := range []int{0, -3} {
		body := fmt.Sprintf(`{"product_id":%q,"quantity":%d,"type":"damaged"}`, product.ID, qty)
		w := postDamage(t, router, body)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Quantity must be greater than zero", resp.Message)
	}
}

func TestCreateDamageRecordsValidRequest(t *testing.T) {
	router, product := newDamageRouter(t)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":2,"type":"stolen","note":"display unit"}`, product.ID)
	w := postDamage(t, router, body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^DMG-[0-9A-F]{8}$`, resp.Data.ID)
	assert.Equal(t, 2, resp.Data.Quantity)
}

func TestCreateDamageStillValidatesType(t *testing.T) {
	router, product := newDamageRouter(t)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":1,"type":"lost"}`, product.ID)
	w := postDamage(t, router, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
