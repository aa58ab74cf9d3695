package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	docs "github.com/heartwired/valentine_api/docs"
	"github.com/heartwired/valentine_api/services/handlers"
	"github.com/heartwired/valentine_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	contentSvc    *ContentService
	unlockSvc     *UnlockService
	mediaSvc      *MediaService
	monitoringSvc *MonitoringService

	authHandler    *handlers.AuthHandler
	contentHandler *handlers.ContentHandler
	gameHandler    *handlers.GameHandler
	adminHandler   *handlers.AdminHandler

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
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
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.unlockSvc = svc.Service(UNLOCK_SVC).(*UnlockService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.authHandler = handlers.NewAuthHandler(svc.authSvc)
	svc.contentHandler = handlers.NewContentHandler(svc.contentSvc)
	svc.gameHandler = handlers.NewGameHandler(svc.unlockSvc)
	svc.adminHandler = handlers.NewAdminHandler(svc.authSvc, svc.contentSvc, svc.mediaSvc)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.errorHandler,
		BodyLimit:    8 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	svc.registerRoutes(app)

	svc.server = app

	log.Info().Int("port", svc.port).Msg("HTTP server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)
	v1.Post("/register", svc.authHandler.Register)
	v1.Post("/login", svc.authHandler.Login)

	// Collection reads allow anonymous callers; they just see nothing
	// but locked placeholders.
	view := v1.Group("", svc.authSvc.OptionalAuth())
	view.Get("/pictures", svc.contentHandler.GetPictures)
	view.Get("/messages", svc.contentHandler.GetMessages)
	view.Get("/treats", svc.contentHandler.GetTreats)

	authed := v1.Group("", svc.authSvc.RequiredAuth())
	authed.Get("/profile", svc.authHandler.GetProfile)
	authed.Put("/profile", svc.authHandler.UpdateProfile)
	authed.Get("/unlocks", svc.gameHandler.GetUnlocks)
	authed.Get("/games", svc.gameHandler.ListGames)
	authed.Post("/games/win", svc.gameHandler.ReportWin)
	authed.Get("/games/win-message", svc.gameHandler.WinMessage)
	authed.Post("/progress/reset", svc.gameHandler.ResetProgress)

	admin := v1.Group("/admin", svc.authSvc.RequiredAuth(), svc.authSvc.RequireAdmin())

	admin.Post("/pictures", svc.adminHandler.AddPicture)
	admin.Put("/pictures/reorder", svc.adminHandler.ReorderPictures)
	admin.Put("/pictures/:id", svc.adminHandler.UpdatePicture)
	admin.Delete("/pictures/:id", svc.adminHandler.DeletePicture)
	admin.Post("/pictures/:id/image", svc.adminHandler.UploadPictureImage)

	admin.Post("/messages", svc.adminHandler.AddMessage)
	admin.Put("/messages/reorder", svc.adminHandler.ReorderMessages)
	admin.Put("/messages/:id", svc.adminHandler.UpdateMessage)
	admin.Delete("/messages/:id", svc.adminHandler.DeleteMessage)

	admin.Post("/treats", svc.adminHandler.AddTreat)
	admin.Put("/treats/reorder", svc.adminHandler.ReorderTreats)
	admin.Put("/treats/:id", svc.adminHandler.UpdateTreat)
	admin.Delete("/treats/:id", svc.adminHandler.DeleteTreat)

	admin.Put("/users/:id/role", svc.adminHandler.AssignRole)

	app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(errors.New("page not found"), "Page not found")
	})
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

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= http.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("path", c.Path()).Msg(appErr.Message)
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return shared.ResponseInternalError(c, err)
}
