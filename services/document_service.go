package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/talentbuzz/marketplace-go/minio"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/repositories"
)

var ErrDocumentNotFound = errors.New("document not found")

const presignedURLExpiry = 15 * time.Minute

type DocumentService struct {
	Repos *repositories.Repos
}

func NewDocumentService(repos *repositories.Repos) *DocumentService {
	return &DocumentService{Repos: repos}
}

// UploadDocument stores the file in MinIO under a random object name
// and records its metadata.
func (s *DocumentService) UploadDocument(ctx context.Context, uploaderID uint, filename, contentType string, reader io.Reader, size int64) (models.Document, error) {
	objectName := fmt.Sprintf("documents/%s%s", uuid.NewString(), filepath.Ext(filename))
	if err := minio.UploadObject(ctx, objectName, contentType, reader, size); err != nil {
		return models.Document{}, err
	}

	doc := models.Document{
		Filename:    filename,
		MinIOPath:   objectName,
		ContentType: contentType,
		Size:        size,
		UploaderID:  uploaderID,
	}
	if err := s.Repos.Document.CreateDocument(&doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

func (s *DocumentService) GetDocument(id uint) (models.Document, error) {
	doc, err := s.Repos.Document.GetDocumentByID(id)
	if err != nil {
		return models.Document{}, ErrDocumentNotFound
	}
	return doc, nil
}

// DocumentURL returns a short-lived presigned download link.
func (s *DocumentService) DocumentURL(ctx context.Context, id uint) (string, error) {
	doc, err := s.Repos.Document.GetDocumentByID(id)
	if err != nil {
		return "", ErrDocumentNotFound
	}
	u, err := minio.PresignedGetURL(ctx, doc.MinIOPath, presignedURLExpiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *DocumentService) ListDocuments(uploaderID uint) ([]models.Document, error) {
	return s.Repos.Document.ListDocumentsByUploader(uploaderID)
}

func (s *DocumentService) RemoveDocument(ctx context.Context, id uint, actorID uint, isStaff bool) error {
	doc, err := s.Repos.Document.GetDocumentByID(id)
	if err != nil {
		return ErrDocumentNotFound
	}
	if doc.UploaderID != actorID && !isStaff {
		return ErrPermissionDenied
	}
	if err := minio.DeleteObject(ctx, doc.MinIOPath); err != nil {
		return err
	}
	return s.Repos.Document.DeleteDocument(id)
}
