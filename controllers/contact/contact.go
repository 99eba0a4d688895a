package contactcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
	"github.com/colemarcuccilli/IBEwebsite/services"
)

type submitInput struct {
	services.ContactSubmission
	TurnstileToken string `json:"turnstileToken"`
}

// SubmitContact is the public contact endpoint. The pipeline verifies the
// bot challenge, persists the lead, and fans out to email and the
// spreadsheet; only verification and the spreadsheet forward decide what the
// visitor sees.
// POST /contact
func SubmitContact(pipeline *services.IntakePipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input submitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		_, err := pipeline.Submit(c.Request.Context(), input.ContactSubmission, input.TurnstileToken)
		switch {
		case errors.Is(err, services.ErrVerifierNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Turnstile secret key not configured"})
		case errors.Is(err, services.ErrVerificationFailed):
			c.JSON(http.StatusForbidden, gin.H{"error": "Turnstile verification failed"})
		case errors.Is(err, services.ErrForwardFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit to Google Sheets"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form"})
		default:
			c.JSON(http.StatusOK, gin.H{"status": "success"})
		}
	}
}

// GetAllContacts lists every lead, newest first. Contacts are append-only;
// the admin surface never mutates them.
// GET /admin/contacts
func GetAllContacts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contacts []models.Contact
		if err := db.Order("created_at DESC").Find(&contacts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}
		c.JSON(http.StatusOK, contacts)
	}
}
