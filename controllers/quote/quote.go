// Package quotecontroller exposes the visitor quote cart. Each browser gets
// a durable visitor cookie on first touch; the cart itself lives in one
// JSON slot per visitor, so it survives reloads until the visitor clears it.
package quotecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
	"github.com/colemarcuccilli/IBEwebsite/quote"
)

// VisitorCookieName identifies the browser owning a quote cart.
const VisitorCookieName = "ibe_visitor"

const visitorCookieMaxAge = 365 * 24 * 60 * 60

// visitorID returns the visitor's id, issuing a fresh cookie when absent.
func visitorID(c *gin.Context) string {
	if id, err := c.Cookie(VisitorCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(VisitorCookieName, id, visitorCookieMaxAge, "/", "", gin.Mode() == gin.ReleaseMode, true)
	return id
}

func cartResponse(cart quote.Cart) gin.H {
	items := cart.Items
	if items == nil {
		items = []quote.Item{}
	}
	return gin.H{
		"items":       items,
		"total_count": cart.TotalCount(),
		"formatted":   cart.Format(),
	}
}

type addItemInput struct {
	ProductID   string `json:"product_id" binding:"required"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

type updateItemInput struct {
	Quantity int `json:"quantity"`
}

// GetQuote returns the visitor's current cart.
// GET /quote
func GetQuote(store *quote.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := store.Load(visitorID(c))
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// AddItem merges a line into the cart. When the caller omits the display
// name, it is captured from the catalog; quantity accumulates on repeat adds.
// POST /quote/items
func AddItem(db *gorm.DB, store *quote.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		name := input.ProductName
		if name == "" {
			var product models.Product
			if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			name = product.Name
		}

		id := visitorID(c)
		cart := store.Load(id)
		cart.AddItem(input.ProductID, name, input.Quantity)

		if err := store.Save(id, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// UpdateItem sets a line's quantity; zero or less removes the line.
// PUT /quote/items/:product_id
func UpdateItem(store *quote.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id := visitorID(c)
		cart := store.Load(id)
		cart.UpdateQuantity(c.Param("product_id"), input.Quantity)

		if err := store.Save(id, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// RemoveItem deletes a line. Removing an absent line is a no-op.
// DELETE /quote/items/:product_id
func RemoveItem(store *quote.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := visitorID(c)
		cart := store.Load(id)
		cart.RemoveItem(c.Param("product_id"))

		if err := store.Save(id, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// ClearQuote empties the visitor's cart, dropping the stored slot.
// DELETE /quote
func ClearQuote(store *quote.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(visitorID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(quote.Cart{}))
	}
}
