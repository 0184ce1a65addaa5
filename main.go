package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/config"
	"github.com/talentbuzz/marketplace-go/db"
	"github.com/talentbuzz/marketplace-go/middleware"
	"github.com/talentbuzz/marketplace-go/minio"
	"github.com/talentbuzz/marketplace-go/routes"
)

// @title TalentBuzz Marketplace API
// @version 1.0
// @description Freelance marketplace backend: projects, gigs, applications, reports and invoicing.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	minio.InitMinio()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
