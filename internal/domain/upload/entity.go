package upload

import "time"

// Upload is an image stored on local disk, referenced from catalog items by URL.
type Upload struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	UserID       int64     `gorm:"column:user_id;index" json:"user_id"`
	OriginalName string    `gorm:"column:original_name" json:"name"`
	FilePath     string    `gorm:"column:file_path" json:"-"`  // relative to the upload dir
	FileURL      string    `gorm:"column:file_url" json:"url"` // public HTTP URL
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	Size         int64     `gorm:"column:size" json:"size"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Upload) TableName() string { return "uploads" }
