package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"climate-api/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"dataset has no measurements"`
}

var availableRoutes = []string{
	"/api/v1.0/precipitation",
	"/api/v1.0/stations",
	"/api/v1.0/mostactivetobs",
	"/api/v1.0/start/<start>",
	"/api/v1.0/start_date/end_date/<start_date>/<end_date>",
}

// handleHome godoc
// @Summary List available routes
// @Tags Climate
// @Produce plain
// @Success 200 {string} string "Available Routes"
// @Router / [get]
func (r *routes) handleHome(c *fiber.Ctx) error {
	return c.SendString("Available Routes:\n" + strings.Join(availableRoutes, "\n") + "\n")
}

// handlePrecipitation godoc
// @Summary Precipitation for the last year of data
// @Description Every (date, prcp) reading within 366 days of the latest measurement. prcp is null when not reported.
// @Tags Climate
// @Produce json
// @Success 200 {array} models.Precipitation
// @Failure 404 {object} ErrorResponse "Dataset has no measurements"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1.0/precipitation [get]
func (r *routes) handlePrecipitation(c *fiber.Ctx) error {
	r.l.Info("precipitation request received", requestFields(c))

	out, err := r.service.Precipitation(c.UserContext())
	if err != nil {
		return r.respondError(c, err, requestFields(c))
	}

	return c.JSON(out)
}

// handleStations godoc
// @Summary List all stations
// @Tags Climate
// @Produce json
// @Success 200 {array} models.Station
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1.0/stations [get]
func (r *routes) handleStations(c *fiber.Ctx) error {
	r.l.Info("stations request received", requestFields(c))

	out, err := r.service.Stations(c.UserContext())
	if err != nil {
		return r.respondError(c, err, requestFields(c))
	}

	return c.JSON(out)
}

// handleMostActiveTobs godoc
// @Summary Last year of temperature observations for the most active station
// @Description Observations for USC00519281 within 365 days of that station's latest measurement, oldest first.
// @Tags Climate
// @Produce json
// @Success 200 {array} models.TemperatureObservation
// @Failure 404 {object} ErrorResponse "Station has no measurements"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1.0/mostactivetobs [get]
func (r *routes) handleMostActiveTobs(c *fiber.Ctx) error {
	r.l.Info("most active station request received", requestFields(c))

	out, err := r.service.MostActiveStationTemperatures(c.UserContext())
	if err != nil {
		return r.respondError(c, err, requestFields(c))
	}

	return c.JSON(out)
}

// handleStartTemps godoc
// @Summary Temperature summary from a start date
// @Description min, avg and max temperature for all dates on or after start. Fields are null when nothing matches.
// @Tags Climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)" example(2017-01-01)
// @Success 200 {array} models.TemperatureSummary
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1.0/start/{start} [get]
func (r *routes) handleStartTemps(c *fiber.Ctx) error {
	start := c.Params("start")

	fields := requestFields(c)
	fields["start"] = start
	r.l.Info("start temperature summary request received", fields)

	summary, err := r.service.TemperatureSummaryFrom(c.UserContext(), start)
	if err != nil {
		return r.respondError(c, err, fields)
	}

	return c.JSON([]models.TemperatureSummary{summary})
}

// handleStartEndTemps godoc
// @Summary Temperature summary over a date range
// @Description min, avg and max temperature between start_date and end_date inclusive. Fields are null when nothing matches.
// @Tags Climate
// @Produce json
// @Param start_date path string true "Start date (YYYY-MM-DD)" example(2017-01-01)
// @Param end_date path string true "End date (YYYY-MM-DD)" example(2017-01-07)
// @Success 200 {array} models.TemperatureSummary
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /api/v1.0/start_date/end_date/{start_date}/{end_date} [get]
func (r *routes) handleStartEndTemps(c *fiber.Ctx) error {
	start := c.Params("start_date")
	end := c.Params("end_date")

	fields := requestFields(c)
	fields["start"] = start
	fields["end"] = end
	r.l.Info("start/end temperature summary request received", fields)

	summary, err := r.service.TemperatureSummaryBetween(c.UserContext(), start, end)
	if err != nil {
		return r.respondError(c, err, fields)
	}

	return c.JSON([]models.TemperatureSummary{summary})
}

func (r *routes) respondError(c *fiber.Ctx, err error, fields map[string]any) error {
	switch {
	case errors.Is(err, models.ErrEmptyDataset):
		r.l.Warning("no measurements to build a window from", fields)
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: models.ErrEmptyDataset.Error(),
		})
	case errors.Is(err, models.ErrStorageUnavailable):
		r.l.Error(err, fields)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "Climate data is temporarily unavailable",
		})
	default:
		r.l.Error(err, fields)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to query climate data",
		})
	}
}

func requestFields(c *fiber.Ctx) map[string]any {
	return map[string]any{
		"path":       c.Path(),
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
	}
}
