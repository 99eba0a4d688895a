package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// MediaFile records every file uploaded through the admin dashboard so the
// library is browsable later.
type MediaFile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FileName  string    `gorm:"not null" json:"file_name"`
	FileURL   string    `gorm:"not null" json:"file_url"`
	MimeType  string    `json:"mime_type"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

func SaveMediaFile(db *gorm.DB, fileName, fileURL, mimeType string, size int64) (*MediaFile, error) {
	media := &MediaFile{
		FileName:  fileName,
		FileURL:   fileURL,
		MimeType:  mimeType,
		SizeBytes: size,
	}
	if err := db.Create(media).Error; err != nil {
		return nil, err
	}

	log.Printf("📁 Saved media file in DB: %s -> %s", fileName, fileURL)
	return media, nil
}

func GetAllMediaFiles(db *gorm.DB) ([]MediaFile, error) {
	var files []MediaFile
	if err := db.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
