package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/kids-in-business/kib_api/docs"
	"github.com/kids-in-business/kib_api/services/handlers"
	"github.com/kids-in-business/kib_api/shared"
)

type middlewareProvider interface {
	RequiredAuth() fiber.Handler
	OptionalAuth() fiber.Handler
}

type rateLimitProvider interface {
	AuthRateLimit() fiber.Handler
	ToggleRateLimit() fiber.Handler
	IPRateLimit() fiber.Handler
}

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	classSvc      *ClassService
	catalogSvc    *CatalogService
	ledgerSvc     *LedgerService
	progressSvc   *ProgressService
	reviewSvc     *ReviewService
	mediaSvc      *MediaService
	monitoringSvc *MonitoringService

	authMiddleware      middlewareProvider
	rateLimitMiddleware rateLimitProvider

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

// Middleware services live in another package and cannot be looked up by
// type from here, so the runtime injects them before Start.
func (svc *HttpService) SetMiddleware(auth middlewareProvider, rateLimit rateLimitProvider) {
	svc.authMiddleware = auth
	svc.rateLimitMiddleware = rateLimit
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.classSvc = svc.Service(CLASS_SVC).(*ClassService)
	svc.catalogSvc = svc.Service(CATALOG_SVC).(*CatalogService)
	svc.ledgerSvc = svc.Service(LEDGER_SVC).(*LedgerService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.reviewSvc = svc.Service(REVIEW_SVC).(*ReviewService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: fmt.Sprintf("Origin, Content-Type, Accept, Authorization, %s", shared.DeviceIDHeader),
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitMiddleware.IPRateLimit())

	app.Get("/ping", svc.ping)

	docs.SwaggerInfo.BasePath = "/"
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseJSON(c, fiber.StatusNotFound, "Not Found", "page not found")
	})

	svc.server = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	classHandler := handlers.NewClassHandler(svc.classSvc)
	activityHandler := handlers.NewActivityHandler(svc.catalogSvc, svc.mediaSvc)
	ledgerHandler := handlers.NewLedgerHandler(svc.ledgerSvc)
	progressHandler := handlers.NewProgressHandler(svc.progressSvc)
	reviewHandler := handlers.NewReviewHandler(svc.reviewSvc)

	required := svc.authMiddleware.RequiredAuth()
	optional := svc.authMiddleware.OptionalAuth()

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	auth := v1.Group("/auth")
	auth.Post("/register", svc.rateLimitMiddleware.AuthRateLimit(), authHandler.Register)
	auth.Post("/login", svc.rateLimitMiddleware.AuthRateLimit(), authHandler.Login)
	auth.Get("/profile", required, authHandler.GetProfile)

	classes := v1.Group("/classes", optional)
	classes.Get("/", classHandler.ListClasses)
	classes.Post("/", classHandler.CreateClass)
	classes.Get("/current", classHandler.GetCurrentClass)
	classes.Put("/current", classHandler.SetCurrentClass)
	classes.Put("/:classId/name", classHandler.RenameClass)
	classes.Delete("/:classId", classHandler.DeleteClass)

	classes.Get("/:classId/progress", progressHandler.GetProgress)
	classes.Get("/:classId/completions", ledgerHandler.GetCompletions)
	classes.Get("/:classId/completions/recent", ledgerHandler.GetRecentCompletions)
	classes.Post("/:classId/completions/toggle", svc.rateLimitMiddleware.ToggleRateLimit(), ledgerHandler.ToggleCompletion)

	v1.Post("/completions/reset", optional, ledgerHandler.ResetCompletions)

	activities := v1.Group("/activities")
	activities.Get("/", activityHandler.ListActivities)
	activities.Get("/:activityId", activityHandler.GetActivity)
	activities.Post("/", required, activityHandler.CreateActivity)
	activities.Put("/:activityId", required, activityHandler.UpdateActivity)
	activities.Delete("/:activityId", required, activityHandler.DeleteActivity)
	activities.Post("/:activityId/badge", required, activityHandler.UploadBadge)

	wallet := v1.Group("/wallet", optional)
	wallet.Get("/", reviewHandler.GetWallet)
	wallet.Post("/reviews", reviewHandler.AddReview)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return shared.ResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
