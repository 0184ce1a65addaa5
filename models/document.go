package models

import "time"

type Document struct {
	DID         uint      `gorm:"primaryKey;column:d_id" json:"d_id"`
	Filename    string    `gorm:"size:200;not null" json:"filename"`
	MinIOPath   string    `gorm:"column:minio_path;size:300;not null" json:"minio_path"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `json:"size"`
	UploaderID  uint      `gorm:"not null;index" json:"uploader_id"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
