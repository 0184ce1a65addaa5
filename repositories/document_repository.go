package repositories

import (
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type DocumentRepo interface {
	CreateDocument(doc *models.Document) error
	GetDocumentByID(id uint) (models.Document, error)
	DeleteDocument(id uint) error
	ListDocumentsByUploader(userID uint) ([]models.Document, error)
}

type DBDocumentRepo struct{}

func (r *DBDocumentRepo) CreateDocument(doc *models.Document) error {
	return db.DB.Create(doc).Error
}

func (r *DBDocumentRepo) GetDocumentByID(id uint) (models.Document, error) {
	var doc models.Document
	err := db.DB.First(&doc, id).Error
	return doc, err
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return db.DB.Delete(&models.Document{}, id).Error
}

func (r *DBDocumentRepo) ListDocumentsByUploader(userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := db.DB.Where("uploader_id = ?", userID).Order("d_id").Find(&docs).Error
	return docs, err
}
