package main

import (
	"github.com/joho/godotenv"

	"github.com/postkit/postkit/config"
	"github.com/postkit/postkit/models"
	"github.com/postkit/postkit/routes"
	"github.com/postkit/postkit/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.Post{})

	r := routes.SetupRouter(db, cfg)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.Port)
	if err := utils.GraceServer(":"+cfg.Port, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
