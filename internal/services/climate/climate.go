package climate

import (
	"context"

	"github.com/pkg/errors"

	"climate-api/internal/models"
	"climate-api/internal/repositories"
	"climate-api/pkg/logger"
)

const (
	// MostActiveStation is the station with the most observations in the Hawaii dataset.
	MostActiveStation = "USC00519281"

	// The precipitation window is one day longer than the station window.
	PrecipitationWindowDays = 366
	StationWindowDays       = 365
)

// ClimateService answers read-only queries over the station and measurement data.
type ClimateService struct {
	repo repositories.ClimateRepository
	l    *logger.Logger
}

func NewClimateService(repo repositories.ClimateRepository, l *logger.Logger) *ClimateService {
	return &ClimateService{
		repo: repo,
		l:    l,
	}
}

// Precipitation returns the readings of the last PrecipitationWindowDays before
// the latest measurement in the dataset, in storage order.
func (s *ClimateService) Precipitation(ctx context.Context) ([]models.Precipitation, error) {
	latest, ok, err := s.repo.LatestDate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "latest measurement date")
	}
	if !ok {
		return nil, models.ErrEmptyDataset
	}

	from, err := WindowStart(latest, PrecipitationWindowDays)
	if err != nil {
		return nil, err
	}

	s.l.Debug("precipitation window", map[string]any{"from": from, "latest": latest})

	out, err := s.repo.Precipitation(ctx, from)
	if err != nil {
		return nil, errors.Wrap(err, "precipitation")
	}
	return out, nil
}

func (s *ClimateService) Stations(ctx context.Context) ([]models.Station, error) {
	out, err := s.repo.Stations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "stations")
	}
	return out, nil
}

// MostActiveStationTemperatures returns the last StationWindowDays of
// observations for MostActiveStation, counted back from that station's own
// latest measurement, oldest first.
func (s *ClimateService) MostActiveStationTemperatures(ctx context.Context) ([]models.TemperatureObservation, error) {
	latest, ok, err := s.repo.LatestStationDate(ctx, MostActiveStation)
	if err != nil {
		return nil, errors.Wrap(err, "latest station measurement date")
	}
	if !ok {
		return nil, errors.Wrapf(models.ErrEmptyDataset, "station %s", MostActiveStation)
	}

	from, err := WindowStart(latest, StationWindowDays)
	if err != nil {
		return nil, err
	}

	s.l.Debug("station temperature window", map[string]any{
		"station": MostActiveStation,
		"from":    from,
		"to":      latest,
	})

	out, err := s.repo.StationTemperatures(ctx, MostActiveStation, from, latest)
	if err != nil {
		return nil, errors.Wrap(err, "station temperatures")
	}
	return out, nil
}

// TemperatureSummaryFrom aggregates every measurement dated on or after start.
// start is compared as text and is not validated.
func (s *ClimateService) TemperatureSummaryFrom(ctx context.Context, start string) (models.TemperatureSummary, error) {
	summary, err := s.repo.TemperatureSummaryFrom(ctx, start)
	if err != nil {
		return models.TemperatureSummary{}, errors.Wrap(err, "temperature summary")
	}
	if summary.Empty() {
		s.l.Debug("no measurements matched", map[string]any{"start": start})
	}
	return summary, nil
}

// TemperatureSummaryBetween aggregates measurements with start <= date <= end.
// A start after end matches nothing and yields an empty summary.
func (s *ClimateService) TemperatureSummaryBetween(ctx context.Context, start, end string) (models.TemperatureSummary, error) {
	summary, err := s.repo.TemperatureSummaryBetween(ctx, start, end)
	if err != nil {
		return models.TemperatureSummary{}, errors.Wrap(err, "temperature summary")
	}
	if summary.Empty() {
		s.l.Debug("no measurements matched", map[string]any{"start": start, "end": end})
	}
	return summary, nil
}

// Ready reports whether the dataset can be reached.
func (s *ClimateService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// WindowStart returns latest minus days, in models.DateLayout.
func WindowStart(latest string, days int) (string, error) {
	t, err := models.ParseDate(latest)
	if err != nil {
		return "", errors.Wrapf(err, "parse latest date %q", latest)
	}
	return t.AddDate(0, 0, -days).Format(models.DateLayout), nil
}
