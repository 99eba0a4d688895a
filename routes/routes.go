package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/config"
	contactcontroller "github.com/colemarcuccilli/IBEwebsite/controllers/contact"
	"github.com/colemarcuccilli/IBEwebsite/services"
)

// SetupRoutes is the single entry-point that wires up the public site API
// and the admin dashboard API.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	pipeline := buildIntakePipeline(db, cfg)

	// Public routes (no middleware)
	SetupPublicRoutes(r, db, pipeline)

	// Admin routes (session-cookie protected)
	SetupAdminRoutes(r, db, cfg)
}

// buildIntakePipeline assembles the contact pipeline from whatever channels
// are configured. Missing credentials simply leave a channel out; only the
// verifier is mandatory for submissions to be accepted at all.
func buildIntakePipeline(db *gorm.DB, cfg config.Config) *services.IntakePipeline {
	pipeline := &services.IntakePipeline{
		Store:  &services.GormContactStore{DB: db},
		Notify: contactcontroller.BroadcastNewContact,
	}

	if cfg.TurnstileSecret != "" {
		pipeline.Verifier = services.NewTurnstileVerifier(cfg.TurnstileSecret)
	}
	if cfg.ResendAPIKey != "" && len(cfg.ContactRecipients) > 0 {
		pipeline.Mailer = services.NewResendMailer(cfg.ResendAPIKey, cfg.ContactFromEmail, cfg.ContactRecipients)
	}
	if cfg.SheetsWebhookURL != "" {
		pipeline.Forwarder = services.NewSheetsForwarder(cfg.SheetsWebhookURL)
	}

	return pipeline
}
