package quotecontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
	"github.com/colemarcuccilli/IBEwebsite/quote"
)

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.QuoteCart{}))

	store := quote.NewStore(db)
	r := gin.New()
	r.GET("/quote", GetQuote(store))
	r.POST("/quote/items", AddItem(db, store))
	r.PUT("/quote/items/:product_id", UpdateItem(store))
	r.DELETE("/quote/items/:product_id", RemoveItem(store))
	r.DELETE("/quote", ClearQuote(store))
	return db, r
}

type cartBody struct {
	Items      []quote.Item `json:"items"`
	TotalCount int          `json:"total_count"`
	Formatted  string       `json:"formatted"`
}

func do(r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartBody {
	t.Helper()
	var body cartBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func visitorCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == VisitorCookieName {
			return ck
		}
	}
	return nil
}

func TestFirstTouchIssuesVisitorCookie(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/quote", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	ck := visitorCookie(w)
	require.NotNil(t, ck, "first request must set the visitor cookie")
	assert.NotEmpty(t, ck.Value)
	assert.True(t, ck.HttpOnly)

	body := decodeCart(t, w)
	assert.Empty(t, body.Items)
	assert.NotNil(t, body.Items, "items is [] in JSON, never null")
	assert.Zero(t, body.TotalCount)
	assert.Empty(t, body.Formatted)
}

func TestAddItemMergesQuantity(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "bread-racks", "product_name": "Bread Racks", "quantity": 2,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ck := visitorCookie(w)
	require.NotNil(t, ck)

	w = do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "bread-racks", "product_name": "Renamed Racks", "quantity": 3,
	}, []*http.Cookie{ck})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeCart(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 5, body.Items[0].Quantity)
	assert.Equal(t, "Bread Racks", body.Items[0].ProductName, "first stored name wins")
	assert.Equal(t, 5, body.TotalCount)
	assert.Equal(t, "Bread Racks (x5)", body.Formatted)
}

func TestAddItemLooksUpNameFromCatalog(t *testing.T) {
	db, r := setupRouter(t)
	require.NoError(t, db.Create(&models.Product{
		ID: "dough-troughs", Name: "Dough Troughs", Description: "d", Category: "bakery",
	}).Error)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "dough-troughs", "quantity": 1,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeCart(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Dough Troughs", body.Items[0].ProductName)
}

func TestAddItemUnknownProductWithoutName(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "ghost", "quantity": 1,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "bread-racks", "product_name": "Bread Racks", "quantity": 0,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "bread-racks", "product_name": "Bread Racks", "quantity": 2,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ck := visitorCookie(w)

	w = do(r, http.MethodPut, "/quote/items/bread-racks", gin.H{"quantity": 0}, []*http.Cookie{ck})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeCart(t, w)
	assert.Empty(t, body.Items)
	assert.Empty(t, body.Formatted)
}

func TestRemoveItemKeepsOthers(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "bread-racks", "product_name": "Bread Racks", "quantity": 2,
	}, nil)
	ck := visitorCookie(w)
	do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "dough-troughs", "product_name": "Dough Troughs", "quantity": 1,
	}, []*http.Cookie{ck})

	w = do(r, http.MethodDelete, "/quote/items/bread-racks", nil, []*http.Cookie{ck})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeCart(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "dough-troughs", body.Items[0].ProductID)
}

func TestClearQuote(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "bread-racks", "product_name": "Bread Racks", "quantity": 2,
	}, nil)
	ck := visitorCookie(w)

	w = do(r, http.MethodDelete, "/quote", nil, []*http.Cookie{ck})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/quote", nil, []*http.Cookie{ck})
	body := decodeCart(t, w)
	assert.Empty(t, body.Items)
}

func TestCartsAreIsolatedPerVisitor(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/quote/items", gin.H{
		"product_id": "bread-racks", "product_name": "Bread Racks", "quantity": 2,
	}, nil)
	first := visitorCookie(w)

	w = do(r, http.MethodGet, "/quote", nil, nil)
	second := visitorCookie(w)
	require.NotNil(t, second)
	require.NotEqual(t, first.Value, second.Value)

	body := decodeCart(t, w)
	assert.Empty(t, body.Items, "a new visitor never sees another visitor's cart")

	w = do(r, http.MethodGet, "/quote", nil, []*http.Cookie{first})
	body = decodeCart(t, w)
	assert.Len(t, body.Items, 1)
}
