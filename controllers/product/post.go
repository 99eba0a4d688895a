package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
	"github.com/colemarcuccilli/IBEwebsite/utils"
)

type createProductInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PDFURL      string `json:"pdf_url"`
	Category    string `json:"category"`
	SortOrder   int    `json:"sort_order"`
}

// CreateProduct creates a new catalog product. The id is a slug derived from
// the name when the request does not supply one; either way it is immutable
// afterwards.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name == "" || input.Description == "" || input.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		id := input.ID
		if id == "" {
			id = utils.Slugify(input.Name)
		}
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name does not produce a usable id"})
			return
		}

		var existing models.Product
		if err := db.First(&existing, "id = ?", id).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A product with this id already exists"})
			return
		}

		product := models.Product{
			ID:          id,
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			PDFURL:      input.PDFURL,
			Category:    input.Category,
			SortOrder:   input.SortOrder,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
