package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

// ProductUpdateInput enumerates every field an admin may change. Only fields
// present in the request body are applied; the id never changes.
type ProductUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	PDFURL      *string `json:"pdf_url"`
	Category    *string `json:"category"`
	SortOrder   *int    `json:"sort_order"`
	Archived    *bool   `json:"archived"`
}

// UpdateProduct applies a partial update to an existing product and stamps
// the modification time.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.PDFURL != nil {
			product.PDFURL = *input.PDFURL
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.SortOrder != nil {
			product.SortOrder = *input.SortOrder
		}
		if input.Archived != nil {
			product.Archived = *input.Archived
		}

		// Save stamps UpdatedAt.
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
