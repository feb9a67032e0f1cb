package repositories

import (
	"context"
	"database/sql"
	_ "embed"

	"climate-api/internal/models"
	"climate-api/pkg/logger"
)

//go:embed sql/latest-date.sql
var latestDateSQL string

//go:embed sql/latest-station-date.sql
var latestStationDateSQL string

//go:embed sql/precipitation.sql
var precipitationSQL string

//go:embed sql/stations.sql
var stationsSQL string

//go:embed sql/station-temperatures.sql
var stationTemperaturesSQL string

//go:embed sql/temperature-summary-from.sql
var temperatureSummaryFromSQL string

//go:embed sql/temperature-summary-between.sql
var temperatureSummaryBetweenSQL string

// Schema is the table layout the queries expect.
//
//go:embed sql/schema.sql
var Schema string

// SQLRepository serves every read through its own connection taken from the
// pool for the duration of one call.
type SQLRepository struct {
	driver string
	db     *sql.DB
	l      *logger.Logger
}

func NewSQLRepository(driver string, db *sql.DB, l *logger.Logger) *SQLRepository {
	return &SQLRepository{
		driver: driver,
		db:     db,
		l:      l,
	}
}

func (r *SQLRepository) Name() string {
	return r.driver
}

func (r *SQLRepository) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return storageError(op, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			r.l.Warning("close connection", map[string]any{"op": op, "err": err})
		}
	}()

	if err := fn(conn); err != nil {
		return storageError(op, err)
	}
	return nil
}

func (r *SQLRepository) LatestDate(ctx context.Context) (string, bool, error) {
	var date sql.NullString
	err := r.withConn(ctx, "latest date", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, latestDateSQL).Scan(&date)
	})
	return date.String, date.Valid, err
}

func (r *SQLRepository) LatestStationDate(ctx context.Context, station string) (string, bool, error) {
	var date sql.NullString
	err := r.withConn(ctx, "latest station date", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, latestStationDateSQL, station).Scan(&date)
	})
	return date.String, date.Valid, err
}

func (r *SQLRepository) Precipitation(ctx context.Context, from string) ([]models.Precipitation, error) {
	out := []models.Precipitation{}
	err := r.withConn(ctx, "precipitation", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, precipitationSQL, from)
		if err != nil {
			return err
		}
		defer r.closeRows(rows, "precipitation")

		for rows.Next() {
			var (
				rec  models.Precipitation
				prcp sql.NullFloat64
			)
			if err := rows.Scan(&rec.Date, &prcp); err != nil {
				return err
			}
			rec.Prcp = nullFloat(prcp)
			out = append(out, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLRepository) Stations(ctx context.Context) ([]models.Station, error) {
	out := []models.Station{}
	err := r.withConn(ctx, "stations", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, stationsSQL)
		if err != nil {
			return err
		}
		defer r.closeRows(rows, "stations")

		for rows.Next() {
			var s models.Station
			if err := rows.Scan(&s.ID, &s.Station, &s.Name, &s.Latitude, &s.Longitude, &s.Elevation); err != nil {
				return err
			}
			out = append(out, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLRepository) StationTemperatures(ctx context.Context, station, from, to string) ([]models.TemperatureObservation, error) {
	out := []models.TemperatureObservation{}
	err := r.withConn(ctx, "station temperatures", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, stationTemperaturesSQL, station, from, to)
		if err != nil {
			return err
		}
		defer r.closeRows(rows, "station temperatures")

		for rows.Next() {
			var obs models.TemperatureObservation
			if err := rows.Scan(&obs.Station, &obs.Date, &obs.Tobs); err != nil {
				return err
			}
			out = append(out, obs)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLRepository) TemperatureSummaryFrom(ctx context.Context, from string) (models.TemperatureSummary, error) {
	return r.temperatureSummary(ctx, "temperature summary from", temperatureSummaryFromSQL, from)
}

func (r *SQLRepository) TemperatureSummaryBetween(ctx context.Context, from, to string) (models.TemperatureSummary, error) {
	return r.temperatureSummary(ctx, "temperature summary between", temperatureSummaryBetweenSQL, from, to)
}

// temperatureSummary relies on MIN/AVG/MAX yielding NULL over zero rows.
func (r *SQLRepository) temperatureSummary(ctx context.Context, op, query string, args ...any) (models.TemperatureSummary, error) {
	var minTemp, avgTemp, maxTemp sql.NullFloat64
	err := r.withConn(ctx, op, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(&minTemp, &avgTemp, &maxTemp)
	})
	if err != nil {
		return models.TemperatureSummary{}, err
	}

	return models.TemperatureSummary{
		MinTemp: nullFloat(minTemp),
		AvgTemp: nullFloat(avgTemp),
		MaxTemp: nullFloat(maxTemp),
	}, nil
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return storageError("ping", err)
	}
	return nil
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func (r *SQLRepository) closeRows(rows *sql.Rows, op string) {
	if err := rows.Close(); err != nil {
		r.l.Warning("close rows", map[string]any{"op": op, "err": err})
	}
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
