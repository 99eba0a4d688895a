package uploadcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/config"
	"github.com/colemarcuccilli/IBEwebsite/models"
)

// UploadFile accepts one multipart file, stores it under the uploads dir
// with a collision-resistant name (timestamp + random suffix, original
// extension preserved or defaulted), records it, and returns the public URL.
// POST /admin/upload
func UploadFile(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		ext := filepath.Ext(file.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		suffix := strings.Split(uuid.NewString(), "-")[0]
		filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)

		saveDir := filepath.Join(cfg.UploadsDir, "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		publicURL := fmt.Sprintf("%s/products/%s", cfg.UploadsPublic, filename)

		if _, err := models.SaveMediaFile(db, file.Filename, publicURL, file.Header.Get("Content-Type"), file.Size); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": publicURL})
	}
}

// ListUploads returns the media library, newest first.
// GET /admin/uploads
func ListUploads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := models.GetAllMediaFiles(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch uploads"})
			return
		}
		c.JSON(http.StatusOK, files)
	}
}
