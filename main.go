package main

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/yunseok-map/all-food-map/configs"
	"github.com/yunseok-map/all-food-map/routes"
	"github.com/yunseok-map/all-food-map/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()
	if err := configs.SeedSpecialDays(); err != nil {
		log.Fatalf("seed special days failed: %v", err)
	}

	// Realtime hub
	hub := ws.NewEventHub()
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	log.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
