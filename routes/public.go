package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogcontroller "github.com/colemarcuccilli/IBEwebsite/controllers/catalog"
	contactcontroller "github.com/colemarcuccilli/IBEwebsite/controllers/contact"
	quotecontroller "github.com/colemarcuccilli/IBEwebsite/controllers/quote"
	"github.com/colemarcuccilli/IBEwebsite/quote"
	"github.com/colemarcuccilli/IBEwebsite/services"
)

// SetupPublicRoutes registers everything the marketing site calls without
// credentials: catalog reads, the visitor quote cart, and the contact form.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, pipeline *services.IntakePipeline) {
	// ──────────────── Catalog ────────────────
	r.GET("/catalog", catalogcontroller.GetCatalog(db))
	r.GET("/products", catalogcontroller.GetProducts(db))
	r.GET("/products/:id", catalogcontroller.GetProductByID(db))
	r.GET("/events", catalogcontroller.GetEvents(db))

	// ──────────────── Quote Cart ────────────────
	store := quote.NewStore(db)
	quoteGroup := r.Group("/quote")
	{
		quoteGroup.GET("", quotecontroller.GetQuote(store))
		quoteGroup.POST("/items", quotecontroller.AddItem(db, store))
		quoteGroup.PUT("/items/:product_id", quotecontroller.UpdateItem(store))
		quoteGroup.DELETE("/items/:product_id", quotecontroller.RemoveItem(store))
		quoteGroup.DELETE("", quotecontroller.ClearQuote(store))
	}

	// ──────────────── Contact ────────────────
	r.POST("/contact", contactcontroller.SubmitContact(pipeline))
}
