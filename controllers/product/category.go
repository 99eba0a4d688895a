package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
	"github.com/colemarcuccilli/IBEwebsite/utils"
)

type createCategoryInput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory adds a category. Like products, the id slug comes from the
// name when not supplied.
// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name == "" {
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

		category := models.Category{
			ID:        id,
			Name:      input.Name,
			SortOrder: input.SortOrder,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns all categories in display order.
// GET /admin/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("sort_order").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// DeleteCategory removes a category unless products still reference it. The
// reference count and the delete run inside one transaction so a product
// created concurrently cannot slip between check and delete.
// DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var blockedBy int64
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Product{}).Where("category = ?", id).Count(&blockedBy).Error; err != nil {
				return err
			}
			if blockedBy > 0 {
				return gorm.ErrInvalidData
			}
			return tx.Delete(&models.Category{}, "id = ?", id).Error
		})

		if blockedBy > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Cannot delete: %d product(s) still use this category. Reassign them first.", blockedBy),
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
