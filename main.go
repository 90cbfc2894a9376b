package main

import (
	"log"

	"github.com/Henry-L/hl-apps/config"
	"github.com/Henry-L/hl-apps/data"
	"github.com/Henry-L/hl-apps/helpers"
	"github.com/Henry-L/hl-apps/routes"
	"github.com/Henry-L/hl-apps/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	log.Println("Starting application...")

	helpers.SetJWTKey(config.JWTSecret())

	// Catch catalog mistakes at startup, not mid-game
	if err := services.ValidateCatalog(data.Player1Items); err != nil {
		log.Fatalf("Player 1 catalog invalid: %v", err)
	}
	if err := services.ValidateCatalog(data.Player2Items); err != nil {
		log.Fatalf("Player 2 catalog invalid: %v", err)
	}

	//Init gin router
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	routes.SetupRoutes(api)

	//Start the server
	port := config.Port()
	log.Printf("Server listening on http://localhost:%s", port)
	r.Run(":" + port)
}
