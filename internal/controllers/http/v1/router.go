package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "climate-api/docs"
	"climate-api/internal/services/climate"
	"climate-api/pkg/logger"
)

type routes struct {
	service *climate.ClimateService
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	climateService *climate.ClimateService,
	l *logger.Logger,
) {
	r := &routes{
		service: climateService,
		l:       l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/", r.handleHome)

	// API routes
	api := app.Group("/api/v1.0")
	api.Get("/precipitation", r.handlePrecipitation)
	api.Get("/stations", r.handleStations)
	api.Get("/mostactivetobs", r.handleMostActiveTobs)
	api.Get("/start/:start", r.handleStartTemps)
	api.Get("/start_date/end_date/:start_date/:end_date", r.handleStartEndTemps)
}
