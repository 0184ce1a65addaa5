package repositories

import (
	"time"

	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/models"
)

type TokenRepo interface {
	CreateToken(token *models.SecurityToken) error
	GetValidToken(token string, purpose models.TokenPurpose) (models.SecurityToken, error)
	MarkTokenUsed(token *models.SecurityToken) error
}

type DBTokenRepo struct{}

func (r *DBTokenRepo) CreateToken(token *models.SecurityToken) error {
	return db.DB.Create(token).Error
}

func (r *DBTokenRepo) GetValidToken(token string, purpose models.TokenPurpose) (models.SecurityToken, error) {
	var st models.SecurityToken
	err := db.DB.
		Where("token = ? AND purpose = ? AND used_at IS NULL AND expires_at > ?", token, string(purpose), time.Now()).
		First(&st).Error
	return st, err
}

func (r *DBTokenRepo) MarkTokenUsed(token *models.SecurityToken) error {
	now := time.Now()
	token.UsedAt = &now
	return db.DB.Save(token).Error
}
