// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/campaigns-api/internal/db"
	"github.com/unclebandit/campaigns-api/internal/handler"
	"github.com/unclebandit/campaigns-api/internal/repository"
	"github.com/unclebandit/campaigns-api/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB (creates the file and schema on first run)
	db.Init()

	campaignRepo := &repository.CampaignRepository{DB: db.DB}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
	}

	// Demo seed, disable with SEED_ON_STARTUP=false
	if os.Getenv("SEED_ON_STARTUP") != "false" {
		if err := campaignService.SeedSampleData(); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}
	}

	campaignHandler := handler.NewCampaignHandler(campaignService)

	r := chi.NewRouter()

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/", campaignHandler.HelloHandler)

		// Campaign routes
		api.Get("/campaigns", campaignHandler.ListCampaignsHandler)
		api.Post("/campaigns", campaignHandler.CreateCampaignHandler)
		api.Get("/campaigns/{id}", campaignHandler.GetCampaignHandler)
		api.Put("/campaigns/{id}", campaignHandler.UpdateCampaignHandler)
		api.Delete("/campaigns/{id}", campaignHandler.DeleteCampaignHandler)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
