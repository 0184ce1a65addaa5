package db

import (
	"fmt"
	"log"

	"github.com/talentbuzz/marketplace-go/config"
	"github.com/talentbuzz/marketplace-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := AutoMigrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func AutoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Freelancer{},
		&models.Company{},
		&models.Project{},
		&models.Gig{},
		&models.GigApplication{},
		&models.ProjectApplication{},
		&models.GigReport{},
		&models.ProjectReport{},
		&models.Invoice{},
		&models.Document{},
		&models.SecurityToken{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
