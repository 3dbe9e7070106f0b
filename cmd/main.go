package main

import (
	"context"
	"log"
	"os"

	"github.com/JamesPraneeth/fitness-tracker/config"
	"github.com/JamesPraneeth/fitness-tracker/routes"
	"github.com/JamesPraneeth/fitness-tracker/services"
)

func main() {
	config.InitDB()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		adminSvc := services.NewAdminService(config.DB)
		if err := adminSvc.EnsureAdmin(context.Background(), adminEmail, adminPassword); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	}

	r := routes.SetupRouter(config.DB)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
