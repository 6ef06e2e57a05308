package api

import (
	"errors"

	"wannatrack-ai/docs"
	"wannatrack-ai/internal/api/handlers"
	"wannatrack-ai/internal/dto"
	"wannatrack-ai/pkg/config"
	"wannatrack-ai/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	analyzeHandler *handlers.AnalyzeHandler,
	healthHandler *handlers.HealthHandler,
	serverCfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	fiberCfg := fiber.Config{
		AppName:      handlers.ServiceName,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(dto.ErrorResponse{Detail: err.Error()})
		},
	}
	if serverCfg.BodyLimitMB > 0 {
		fiberCfg.BodyLimit = serverCfg.BodyLimitMB * 1024 * 1024
	}
	app := fiber.New(fiberCfg)

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + fiber.HeaderXRequestID,
		ExposeHeaders: fiber.HeaderXRequestID,
	}))
	app.Use(middleware.RequestContext(appLogger))

	// importing docs registers the swagger document in its init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", healthHandler.Health)
	app.Post("/analyze", analyzeHandler.Analyze)

	return app
}
