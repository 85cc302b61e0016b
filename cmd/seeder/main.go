//cmd/seeder/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/unclebandit/campaigns-api/internal/db"
	"github.com/unclebandit/campaigns-api/internal/repository"
	"github.com/unclebandit/campaigns-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	path := os.Getenv("CAMPAIGN_DB_PATH")
	if path == "" {
		path = "database.db"
	}

	d, err := db.Open(path)
	if err != nil {
		log.Fatalf("failed to open %s: %v", path, err)
	}
	defer d.Close()

	svc := &service.CampaignService{
		CampaignRepo: &repository.CampaignRepository{DB: d},
	}

	if err := svc.SeedSampleData(); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	total, err := svc.CampaignRepo.Count()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Database seeding completed successfully! (%d campaigns in %s)\n", total, path)
}
