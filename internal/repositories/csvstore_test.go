package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-api/config"
	"climate-api/internal/models"
)

func openTestCSV(t *testing.T) *CSVRepository {
	t.Helper()
	repo, err := OpenCSVRepository(config.CSVConfig{
		StationsPath:     "testdata/stations.csv",
		MeasurementsPath: "testdata/measurements.csv",
	}, testLogger())
	require.NoError(t, err)
	return repo
}

func TestCSVRepository_Stations(t *testing.T) {
	repo := openTestCSV(t)

	got, err := repo.Stations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Station{
		{ID: 1, Station: "USC00519397", Name: "WAIKIKI 717.2, HI US", Latitude: 21.2716, Longitude: -157.8168, Elevation: 3.0},
		{ID: 2, Station: "USC00519281", Name: "WAIHEE 837.5, HI US", Latitude: 21.45167, Longitude: -157.84889, Elevation: 32.9},
	}, got)
	assert.Equal(t, "csv", repo.Name())
}

func TestCSVRepository_StationsKeepExplicitIDs(t *testing.T) {
	repo, err := NewCSVRepository(
		strings.NewReader("id,station,name,latitude,longitude,elevation\n7,A,Alpha,0,0,0\n"),
		strings.NewReader("station,date,prcp,tobs\n"),
		testLogger(),
	)
	require.NoError(t, err)

	got, err := repo.Stations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Station{{ID: 7, Station: "A", Name: "Alpha"}}, got)
}

func TestCSVRepository_LatestDate(t *testing.T) {
	ctx := context.Background()
	repo := openTestCSV(t)

	date, ok, err := repo.LatestDate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2017-08-23", date)

	date, ok, err = repo.LatestStationDate(ctx, "USC00519281")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2017-08-18", date)

	_, ok, err = repo.LatestStationDate(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCSVRepository_Precipitation(t *testing.T) {
	repo := openTestCSV(t)

	got, err := repo.Precipitation(context.Background(), "2016-08-23")
	require.NoError(t, err)

	assert.Equal(t, []models.Precipitation{
		{Date: "2016-08-23", Prcp: ptr(0)},
		{Date: "2017-08-23", Prcp: nil},
		{Date: "2017-08-18", Prcp: ptr(0.06)},
		{Date: "2017-08-10", Prcp: ptr(0)},
	}, got)
}

func TestCSVRepository_StationTemperatures(t *testing.T) {
	repo := openTestCSV(t)

	got, err := repo.StationTemperatures(context.Background(), "USC00519281", "2016-08-18", "2017-08-18")
	require.NoError(t, err)

	assert.Equal(t, []models.TemperatureObservation{
		{Station: "USC00519281", Date: "2016-08-18", Tobs: 80},
		{Station: "USC00519281", Date: "2017-08-10", Tobs: 77},
		{Station: "USC00519281", Date: "2017-08-18", Tobs: 79},
	}, got)
}

func TestCSVRepository_TemperatureSummary(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCSVRepository(
		strings.NewReader("station,name,latitude,longitude,elevation\n"),
		strings.NewReader("station,date,prcp,tobs\nA,2020-01-01,,10\nA,2020-06-01,,20\nA,2020-12-31,,30\n"),
		testLogger(),
	)
	require.NoError(t, err)

	got, err := repo.TemperatureSummaryBetween(ctx, "2020-01-01", "2020-12-31")
	require.NoError(t, err)
	assert.Equal(t, models.TemperatureSummary{MinTemp: ptr(10), AvgTemp: ptr(20), MaxTemp: ptr(30)}, got)

	got, err = repo.TemperatureSummaryFrom(ctx, "2021-01-01")
	require.NoError(t, err)
	assert.True(t, got.Empty())

	got, err = repo.TemperatureSummaryBetween(ctx, "2020-12-31", "2020-01-01")
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestCSVRepository_DecodeErrors(t *testing.T) {
	_, err := NewCSVRepository(strings.NewReader(""), strings.NewReader(""), testLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrStorageUnavailable))
	assert.Contains(t, err.Error(), "missing header")

	_, err = NewCSVRepository(
		strings.NewReader("station,name,latitude,longitude,elevation\n"),
		strings.NewReader("station,date,prcp,tobs\nA,2020-01-01,,warm\n"),
		testLogger(),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrStorageUnavailable))
}
