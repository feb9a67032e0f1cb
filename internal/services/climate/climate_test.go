package climate_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-api/internal/models"
	"climate-api/internal/repositories"
	"climate-api/internal/services/climate"
	"climate-api/pkg/logger"
)

// MockRepository implements ClimateRepository for testing
type MockRepository struct {
	repositories.ClimateRepository

	latest        string
	latestStation map[string]string
	err           error

	precipitationFrom string
	temperaturesArgs  []string
	precipitation     []models.Precipitation
	temperatures      []models.TemperatureObservation
}

func (m *MockRepository) LatestDate(_ context.Context) (string, bool, error) {
	return m.latest, m.latest != "", m.err
}

func (m *MockRepository) LatestStationDate(_ context.Context, station string) (string, bool, error) {
	date, ok := m.latestStation[station]
	return date, ok, m.err
}

func (m *MockRepository) Precipitation(_ context.Context, from string) ([]models.Precipitation, error) {
	m.precipitationFrom = from
	return m.precipitation, m.err
}

func (m *MockRepository) StationTemperatures(_ context.Context, station, from, to string) ([]models.TemperatureObservation, error) {
	m.temperaturesArgs = []string{station, from, to}
	return m.temperatures, m.err
}

func (m *MockRepository) Stations(_ context.Context) ([]models.Station, error) {
	return nil, m.err
}

func (m *MockRepository) TemperatureSummaryFrom(_ context.Context, _ string) (models.TemperatureSummary, error) {
	return models.TemperatureSummary{}, m.err
}

func (m *MockRepository) TemperatureSummaryBetween(_ context.Context, _, _ string) (models.TemperatureSummary, error) {
	return models.TemperatureSummary{}, m.err
}

func (m *MockRepository) Ping(_ context.Context) error {
	return m.err
}

func testLogger() *logger.Logger {
	return logger.NewZapLogger(logger.Options{AppName: "test-app"}, io.Discard)
}

func csvService(t *testing.T, stations, measurements string) *climate.ClimateService {
	t.Helper()
	repo, err := repositories.NewCSVRepository(strings.NewReader(stations), strings.NewReader(measurements), testLogger())
	require.NoError(t, err)
	return climate.NewClimateService(repo, testLogger())
}

func ptr(v float64) *float64 { return &v }

const stationsHeader = "station,name,latitude,longitude,elevation\n"

func TestWindowStart(t *testing.T) {
	tests := []struct {
		latest string
		days   int
		want   string
	}{
		{latest: "2017-08-23", days: 366, want: "2016-08-22"},
		{latest: "2017-08-23", days: 365, want: "2016-08-23"},
		{latest: "2016-03-01", days: 366, want: "2015-03-01"},
		{latest: "2017-08-23 00:00:00.000000", days: 365, want: "2016-08-23"},
	}

	for _, tt := range tests {
		got, err := climate.WindowStart(tt.latest, tt.days)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s - %d days", tt.latest, tt.days)
	}

	_, err := climate.WindowStart("not a date", 365)
	assert.ErrorContains(t, err, `parse latest date "not a date"`)
}

func TestClimateService_Precipitation_Window(t *testing.T) {
	repo := &MockRepository{
		latest:        "2017-08-23",
		precipitation: []models.Precipitation{{Date: "2017-08-23", Prcp: nil}},
	}
	service := climate.NewClimateService(repo, testLogger())

	got, err := service.Precipitation(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2016-08-22", repo.precipitationFrom)
	assert.Equal(t, []models.Precipitation{{Date: "2017-08-23", Prcp: nil}}, got)
}

func TestClimateService_Precipitation_DatesWithinWindow(t *testing.T) {
	service := csvService(t, stationsHeader, `station,date,prcp,tobs
A,2016-08-21,0.1,70
A,2016-08-22,0.2,71
B,2017-01-01,,72
A,2017-08-23,0.0,73
`)

	got, err := service.Precipitation(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Precipitation{
		{Date: "2016-08-22", Prcp: ptr(0.2)},
		{Date: "2017-01-01", Prcp: nil},
		{Date: "2017-08-23", Prcp: ptr(0)},
	}, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Date, "2016-08-22")
	}
}

func TestClimateService_Precipitation_EmptyDataset(t *testing.T) {
	service := csvService(t, stationsHeader, "station,date,prcp,tobs\n")

	_, err := service.Precipitation(context.Background())
	assert.ErrorIs(t, err, models.ErrEmptyDataset)
}

func TestClimateService_MostActiveStation_Window(t *testing.T) {
	repo := &MockRepository{
		latest:        "2017-08-23",
		latestStation: map[string]string{climate.MostActiveStation: "2017-08-18"},
	}
	service := climate.NewClimateService(repo, testLogger())

	_, err := service.MostActiveStationTemperatures(context.Background())
	require.NoError(t, err)

	// scoped to the station's own latest date, 365 days back
	assert.Equal(t, []string{climate.MostActiveStation, "2016-08-18", "2017-08-18"}, repo.temperaturesArgs)
}

func TestClimateService_MostActiveStation_Observations(t *testing.T) {
	service := csvService(t, stationsHeader, `station,date,prcp,tobs
USC00519281,2017-08-18,0.06,79
USC00519281,2016-08-17,0.1,75
USC00519397,2017-08-23,,81
USC00519281,2016-08-18,0.0,80
USC00519281,2017-01-05,0.0,66
`)

	got, err := service.MostActiveStationTemperatures(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.TemperatureObservation{
		{Station: "USC00519281", Date: "2016-08-18", Tobs: 80},
		{Station: "USC00519281", Date: "2017-01-05", Tobs: 66},
		{Station: "USC00519281", Date: "2017-08-18", Tobs: 79},
	}, got)
}

func TestClimateService_MostActiveStation_NoMeasurements(t *testing.T) {
	service := csvService(t, stationsHeader, "station,date,prcp,tobs\nUSC00519397,2017-08-23,,81\n")

	_, err := service.MostActiveStationTemperatures(context.Background())
	assert.ErrorIs(t, err, models.ErrEmptyDataset)
	assert.ErrorContains(t, err, climate.MostActiveStation)
}

func TestClimateService_Stations(t *testing.T) {
	service := csvService(t, stationsHeader+"A,Alpha,0,0,0\n", "station,date,prcp,tobs\n")

	got, err := service.Stations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Station{{ID: 1, Station: "A", Name: "Alpha"}}, got)
}

func TestClimateService_TemperatureSummary(t *testing.T) {
	ctx := context.Background()
	service := csvService(t, stationsHeader, `station,date,prcp,tobs
A,2020-01-01,,10
A,2020-06-01,,20
A,2020-12-31,,30
`)

	got, err := service.TemperatureSummaryBetween(ctx, "2020-01-01", "2020-12-31")
	require.NoError(t, err)
	assert.Equal(t, models.TemperatureSummary{MinTemp: ptr(10), AvgTemp: ptr(20), MaxTemp: ptr(30)}, got)

	got, err = service.TemperatureSummaryFrom(ctx, "2021-01-01")
	require.NoError(t, err)
	assert.Equal(t, models.TemperatureSummary{}, got)

	got, err = service.TemperatureSummaryBetween(ctx, "2020-12-31", "2020-01-01")
	require.NoError(t, err)
	assert.Nil(t, got.MinTemp)
	assert.Nil(t, got.AvgTemp)
	assert.Nil(t, got.MaxTemp)
}

func TestClimateService_StorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storageErr := errors.Join(models.ErrStorageUnavailable, errors.New("disk I/O error"))
	service := climate.NewClimateService(&MockRepository{latest: "2017-08-23", err: storageErr}, testLogger())

	_, err := service.Precipitation(ctx)
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, models.ErrEmptyDataset)

	_, err = service.MostActiveStationTemperatures(ctx)
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	_, err = service.Stations(ctx)
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	_, err = service.TemperatureSummaryFrom(ctx, "2020-01-01")
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	_, err = service.TemperatureSummaryBetween(ctx, "2020-01-01", "2020-12-31")
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	assert.ErrorIs(t, service.Ready(ctx), models.ErrStorageUnavailable)
}
