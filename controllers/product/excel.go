package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
	"github.com/colemarcuccilli/IBEwebsite/utils"
)

// ImportProductsFromExcel bulk-loads catalog rows from an uploaded sheet.
// Columns: ID, Name, Description, Category, SortOrder, ImageURL, PDFURL.
// Rows with an existing id are updated, the rest created; bad rows are
// skipped and counted.
// POST /admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			description := get(2)
			category := get(3)
			sortOrder, _ := strconv.Atoi(get(4))
			imageURL := get(5)
			pdfURL := get(6)

			if name == "" || description == "" || category == "" {
				skippedCount++
				continue
			}
			if id == "" {
				id = utils.Slugify(name)
			}

			var existing models.Product
			if err := db.First(&existing, "id = ?", id).Error; err == nil {
				existing.Name = name
				existing.Description = description
				existing.Category = category
				existing.SortOrder = sortOrder
				existing.ImageURL = imageURL
				existing.PDFURL = pdfURL
				if err := db.Save(&existing).Error; err == nil {
					updatedCount++
				} else {
					skippedCount++
				}
				continue
			}

			product := models.Product{
				ID:          id,
				Name:        name,
				Description: description,
				Category:    category,
				SortOrder:   sortOrder,
				ImageURL:    imageURL,
				PDFURL:      pdfURL,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
