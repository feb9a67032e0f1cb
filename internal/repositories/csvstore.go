package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"sort"

	"github.com/jszwec/csvutil"

	"climate-api/internal/models"
	"climate-api/pkg/logger"
)

// CSVRepository answers the same queries as SQLRepository from CSV exports
// held in memory. Rows keep file order; nothing is mutated after load.
type CSVRepository struct {
	stations     []models.Station
	measurements []models.Measurement
	l            *logger.Logger
}

func NewCSVRepository(stations, measurements io.Reader, l *logger.Logger) (*CSVRepository, error) {
	var r CSVRepository
	r.l = l

	if err := decodeCSV(stations, &r.stations); err != nil {
		return nil, storageError("decode stations csv", err)
	}
	if err := decodeCSV(measurements, &r.measurements); err != nil {
		return nil, storageError("decode measurements csv", err)
	}

	// exports without an id column get the row number, as sqlite would assign
	for i := range r.stations {
		if r.stations[i].ID == 0 {
			r.stations[i].ID = i + 1
		}
	}

	l.Info("loaded csv dataset", map[string]any{
		"stations":     len(r.stations),
		"measurements": len(r.measurements),
	})

	return &r, nil
}

func decodeCSV(in io.Reader, v any) error {
	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("missing header")
		}
		return err
	}
	// header-only files decode to an empty slice
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (r *CSVRepository) Name() string {
	return "csv"
}

func (r *CSVRepository) LatestDate(_ context.Context) (string, bool, error) {
	return r.latest(func(models.Measurement) bool { return true })
}

func (r *CSVRepository) LatestStationDate(_ context.Context, station string) (string, bool, error) {
	return r.latest(func(m models.Measurement) bool { return m.Station == station })
}

func (r *CSVRepository) latest(match func(models.Measurement) bool) (string, bool, error) {
	var (
		latest string
		found  bool
	)
	for _, m := range r.measurements {
		if !match(m) {
			continue
		}
		if !found || m.Date > latest {
			latest = m.Date
			found = true
		}
	}
	return latest, found, nil
}

func (r *CSVRepository) Precipitation(_ context.Context, from string) ([]models.Precipitation, error) {
	out := []models.Precipitation{}
	for _, m := range r.measurements {
		if m.Date >= from {
			out = append(out, models.Precipitation{Date: m.Date, Prcp: m.Prcp})
		}
	}
	return out, nil
}

func (r *CSVRepository) Stations(_ context.Context) ([]models.Station, error) {
	out := make([]models.Station, len(r.stations))
	copy(out, r.stations)
	return out, nil
}

func (r *CSVRepository) StationTemperatures(_ context.Context, station, from, to string) ([]models.TemperatureObservation, error) {
	out := []models.TemperatureObservation{}
	for _, m := range r.measurements {
		if m.Station == station && m.Date >= from && m.Date <= to {
			out = append(out, models.TemperatureObservation{Station: m.Station, Date: m.Date, Tobs: m.Tobs})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *CSVRepository) TemperatureSummaryFrom(_ context.Context, from string) (models.TemperatureSummary, error) {
	return r.summarize(func(m models.Measurement) bool { return m.Date >= from }), nil
}

func (r *CSVRepository) TemperatureSummaryBetween(_ context.Context, from, to string) (models.TemperatureSummary, error) {
	return r.summarize(func(m models.Measurement) bool { return m.Date >= from && m.Date <= to }), nil
}

func (r *CSVRepository) summarize(match func(models.Measurement) bool) models.TemperatureSummary {
	var (
		minTemp, maxTemp, sum float64
		n                     int
	)
	for _, m := range r.measurements {
		if !match(m) {
			continue
		}
		if n == 0 || m.Tobs < minTemp {
			minTemp = m.Tobs
		}
		if n == 0 || m.Tobs > maxTemp {
			maxTemp = m.Tobs
		}
		sum += m.Tobs
		n++
	}

	if n == 0 {
		return models.TemperatureSummary{}
	}

	avgTemp := sum / float64(n)
	return models.TemperatureSummary{
		MinTemp: &minTemp,
		AvgTemp: &avgTemp,
		MaxTemp: &maxTemp,
	}
}

func (r *CSVRepository) Ping(_ context.Context) error {
	return nil
}

func (r *CSVRepository) Close() error {
	return nil
}
