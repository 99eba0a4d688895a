package contactcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

// ExportContactsToExcel downloads every lead as an xlsx sheet for the sales
// team.
// GET /admin/contacts/export-excel
func ExportContactsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contacts []models.Contact
		if err := db.Order("created_at DESC").Find(&contacts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Contacts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Email", "Company", "Phone",
			"ProductInterest", "Products", "Message", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, contact := range contacts {
			row := sheet.AddRow()
			row.AddCell().SetValue(contact.ID)
			row.AddCell().SetValue(contact.Name)
			row.AddCell().SetValue(contact.Email)
			row.AddCell().SetValue(contact.Company)
			row.AddCell().SetValue(contact.Phone)
			row.AddCell().SetValue(contact.ProductInterest)
			row.AddCell().SetValue(contact.Products)
			row.AddCell().SetValue(contact.Message)
			row.AddCell().SetValue(contact.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=contacts.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
