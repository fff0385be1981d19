package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"blogspace/bootstrap"
	"blogspace/configs"
	"blogspace/database"
	"blogspace/internal/feedcache"
	"blogspace/internal/handlers"
	"blogspace/internal/middleware"
	"blogspace/internal/routes"
)

func main() {
	// Values from .env override the inherited environment, matching how
	// the service is run in development.
	_ = godotenv.Overload(".env")

	log := database.NewLogger()

	cfg, err := database.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	db := client.Database(cfg.DBName)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.NewErrorHandler(log),
	})
	app.Use(middleware.RequestLog(log))
	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		DB:     db,
		Cache:  feedcache.New(configs.FeedCacheTTL, time.Now),
		Secret: cfg.JWTSecret,
	})

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
