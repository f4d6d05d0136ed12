package main

import (
	"HelpDesk/config"
	"HelpDesk/internal/repo"
	"HelpDesk/internal/service"
	"HelpDesk/internal/storage"
	"HelpDesk/router"
	"log"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	repo.InitRedis()
	storage.InitStore()

	if err := service.SeedRoles(); err != nil {
		log.Fatalf("seed roles failed: %v", err)
	}

	router := router.InitRouter()

	router.Run(":8000")
}
