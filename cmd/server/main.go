package main

import (
	"log"
	"net/http"

	"buildboard/internal/config"
	"buildboard/internal/db"
	"buildboard/internal/metrics"
	"buildboard/internal/middleware"
	"buildboard/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Get()

	// Initialize Database
	db.Init()

	// Prometheus counters
	metrics.Register()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("buildboard_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r)

	// The web front end runs on its own origin.
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Printf("buildboard server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(r)); err != nil {
		log.Fatal(err)
	}
}
