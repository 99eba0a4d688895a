package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/auth"
	"github.com/colemarcuccilli/IBEwebsite/config"
	contactcontroller "github.com/colemarcuccilli/IBEwebsite/controllers/contact"
	eventcontroller "github.com/colemarcuccilli/IBEwebsite/controllers/event"
	productcontroller "github.com/colemarcuccilli/IBEwebsite/controllers/product"
	uploadcontroller "github.com/colemarcuccilli/IBEwebsite/controllers/upload"
	"github.com/colemarcuccilli/IBEwebsite/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Login and logout are
// open; everything else sits behind the session-cookie middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.POST("/admin/login", auth.AdminLoginHandler(cfg))
	r.POST("/admin/logout", auth.AdminLogoutHandler())

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminSession(cfg.SessionSecret))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Event Management ───────────
		eventAdmin := adminGroup.Group("/events")
		{
			eventAdmin.GET("", eventcontroller.GetEvents(db))
			eventAdmin.POST("", eventcontroller.CreateEvent(db))
			eventAdmin.PUT("/:id", eventcontroller.UpdateEvent(db))
			eventAdmin.DELETE("/:id", eventcontroller.DeleteEvent(db))
		}

		// ─────────── Lead Inbox ───────────
		contactAdmin := adminGroup.Group("/contacts")
		{
			contactAdmin.GET("", contactcontroller.GetAllContacts(db))
			contactAdmin.GET("/export-excel", contactcontroller.ExportContactsToExcel(db))
			contactAdmin.GET("/ws", contactcontroller.ContactWebSocketHandler)
		}

		// ─────────── Media Library ───────────
		adminGroup.POST("/upload", uploadcontroller.UploadFile(db, cfg))
		adminGroup.GET("/uploads", uploadcontroller.ListUploads(db))
	}
}
