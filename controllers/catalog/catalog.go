// Package catalogcontroller serves the public read model. The marketing site
// must stay navigable even when the database is down, so every collection
// falls back to the shipped defaults on a fetch error. An empty collection
// from a healthy store is served as-is: an admin who deletes everything sees
// an empty site, not the defaults resurrected.
package catalogcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/data"
	"github.com/colemarcuccilli/IBEwebsite/models"
)

func fetchProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := db.Where("archived = ?", false).Order("sort_order").Find(&products).Error
	return products, err
}

func fetchCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("sort_order").Find(&categories).Error
	return categories, err
}

func fetchEvents(db *gorm.DB) ([]models.Event, error) {
	var events []models.Event
	err := db.Order("date").Find(&events).Error
	return events, err
}

// GetCatalog returns products, categories, and events in one response. The
// three collections fail over to defaults independently.
// GET /catalog
func GetCatalog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := fetchProducts(db)
		if err != nil {
			log.Printf("❌ Product fetch failed, serving defaults: %v", err)
			products = data.DefaultProducts()
		}

		categories, err := fetchCategories(db)
		if err != nil {
			log.Printf("❌ Category fetch failed, serving defaults: %v", err)
			categories = data.DefaultCategories()
		}

		events, err := fetchEvents(db)
		if err != nil {
			log.Printf("❌ Event fetch failed, serving defaults: %v", err)
			events = data.DefaultEvents()
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": categories,
			"events":     events,
		})
	}
}

// GetProducts lists the live (non-archived) products.
// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := fetchProducts(db)
		if err != nil {
			log.Printf("❌ Product fetch failed, serving defaults: %v", err)
			products = data.DefaultProducts()
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product by slug.
// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetEvents lists the public event schedule.
// GET /events
func GetEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := fetchEvents(db)
		if err != nil {
			log.Printf("❌ Event fetch failed, serving defaults: %v", err)
			events = data.DefaultEvents()
		}
		c.JSON(http.StatusOK, events)
	}
}
