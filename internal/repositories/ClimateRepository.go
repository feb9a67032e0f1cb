package repositories

import (
	"context"
	"fmt"
	"os"

	"climate-api/config"
	"climate-api/internal/models"
	"climate-api/pkg/database"
	"climate-api/pkg/logger"
)

// ClimateRepository reads the station and measurement tables. Date arguments
// are compared as text. Storage failures wrap models.ErrStorageUnavailable.
type ClimateRepository interface {
	Name() string
	// LatestDate returns the greatest measurement date; ok is false when there are no measurements.
	LatestDate(ctx context.Context) (date string, ok bool, err error)
	// LatestStationDate is LatestDate restricted to one station code.
	LatestStationDate(ctx context.Context, station string) (date string, ok bool, err error)
	Precipitation(ctx context.Context, from string) ([]models.Precipitation, error)
	Stations(ctx context.Context) ([]models.Station, error)
	// StationTemperatures returns observations with from <= date <= to in ascending date order.
	StationTemperatures(ctx context.Context, station, from, to string) ([]models.TemperatureObservation, error)
	TemperatureSummaryFrom(ctx context.Context, from string) (models.TemperatureSummary, error)
	TemperatureSummaryBetween(ctx context.Context, from, to string) (models.TemperatureSummary, error)
	Ping(ctx context.Context) error
	Close() error
}

func InitClimateRepository(ctx context.Context, cfg *config.Config, l *logger.Logger) (ClimateRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageSQLite, config.StorageMySQL:
		db, err := database.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, storageError("open "+cfg.Storage.Driver, err)
		}
		return NewSQLRepository(cfg.Storage.Driver, db, l), nil
	case config.StorageCSV:
		return OpenCSVRepository(cfg.Storage.CSV, l)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", models.ErrStorageUnavailable, op, err)
}

// OpenCSVRepository loads both CSV files fully into memory.
func OpenCSVRepository(cfg config.CSVConfig, l *logger.Logger) (*CSVRepository, error) {
	stations, err := os.Open(cfg.StationsPath)
	if err != nil {
		return nil, storageError("open stations csv", err)
	}
	defer stations.Close()

	measurements, err := os.Open(cfg.MeasurementsPath)
	if err != nil {
		return nil, storageError("open measurements csv", err)
	}
	defer measurements.Close()

	return NewCSVRepository(stations, measurements, l)
}
