package main

import (
	"log"

	"github.com/GbFerrera/asc-admin-api/internal/api"
	router "github.com/GbFerrera/asc-admin-api/internal/http"
	"github.com/GbFerrera/asc-admin-api/internal/logger"
	"github.com/GbFerrera/asc-admin-api/internal/services"
	"github.com/GbFerrera/asc-admin-api/internal/utils"
)

func main() {
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	backend := api.New(config.backendEndpoint, config.backendTimeout)

	log.Printf("Running server on %s, backend at %s\n", config.endpoint, config.backendEndpoint)

	utils.HandleTerminationProcess(func() {
		_ = logger.Log.Sync()
	})

	router.New(
		router.Config{Endpoint: config.endpoint},
		services.NewJWTService(config.authSecretKey),
		services.NewOrderService(backend),
	).Run()
}
