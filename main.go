package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studio/config"
	"studio/crm"
	"studio/database"
	"studio/handlers"
	"studio/middleware"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	if os.Getenv("SEED_TOKEN") == "" {
		log.Println("SEED_TOKEN not set, seed endpoint uses the insecure development default")
	}

	// A missing or unreachable database is not fatal: the server still
	// answers, and /test reports the connection state.
	var store handlers.Store
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, starting without a database connection")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		cancel()
		if err != nil {
			log.Printf("Failed to connect to database: %v", err)
		} else {
			store = db
			defer db.Close()
		}
	}

	notifier := crm.NewHubSpot(cfg.HubSpotAPIKey)

	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/", handlers.Root)
	r.GET("/api/hello", handlers.Hello)
	r.GET("/test", handlers.Diagnostics(store, cfg))

	r.GET("/api/products", handlers.ListProducts(store))
	r.GET("/api/projects", handlers.ListProjects(store))
	r.GET("/api/testimonials", handlers.ListTestimonials(store))
	r.GET("/api/blogposts", handlers.ListBlogPosts(store))
	r.POST("/api/leads", handlers.CreateLead(store, notifier))
	r.POST("/api/seed-demo", handlers.SeedDemo(store, cfg.SeedToken))

	log.Printf("Server starting on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
