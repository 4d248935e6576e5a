package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kids-in-business/kib_api/middleware"
	"github.com/kids-in-business/kib_api/services"
)

// @title Kids in Business API
// @version 1.0
// @description Classroom entrepreneurship activities, completion tracking and mentor wallet
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	httpSvc := &services.HttpService{}
	authMiddleware := &middleware.AuthMiddleware{}
	rateLimitMiddleware := &middleware.RateLimitMiddleware{}
	httpSvc.SetMiddleware(authMiddleware, rateLimitMiddleware)

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},
		&services.JWTService{},
		&services.MinIOService{},
		&services.MonitoringService{},

		&services.AuthService{},
		&services.ClassService{},
		&services.CatalogService{},
		&services.LedgerService{},
		&services.ProgressService{},
		&services.ReviewService{},
		&services.MediaService{},

		authMiddleware,
		rateLimitMiddleware,

		httpSvc,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service runtime exited")
		return
	}
}
