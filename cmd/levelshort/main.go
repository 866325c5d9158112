package main

import (
	"log"

	"github.com/go-chi/chi/v5"

	"levelshort/internal/app"
	"levelshort/internal/config"
	"levelshort/internal/handlers"
	"levelshort/internal/logger"
	"levelshort/internal/services"
	"levelshort/internal/tenant"
)

func main() {
	c := config.NewConfig()
	if err := config.Init(c); err != nil {
		log.Fatalf("Failed to init config: %v", err)
	}

	sugar, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	repo := app.SelectRepository(c, sugar)
	encoderService := services.NewEncoderService(repo, sugar)
	sessionService := tenant.NewSessionService()
	controller := handlers.NewController(c, encoderService, sessionService, sugar)

	r := chi.NewRouter()
	app.InitMiddleware(r, c, controller)
	app.Routing(r, controller)

	server := app.CreateServer(c, r, sugar)
	if err := server.ListenAndServe(); err != nil {
		sugar.Fatalf("Failed to start server: %v", err)
	}
}
