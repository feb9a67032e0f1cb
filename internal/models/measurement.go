package models

import "time"

// DateLayout is the text form of Measurement.Date. Dates in this layout
// sort lexically in chronological order.
const DateLayout = "2006-01-02"

// Measurement is a single daily observation. Prcp is nil when the station
// reported no precipitation value for the day.
type Measurement struct {
	Station string   `csv:"station"`
	Date    string   `csv:"date"`
	Prcp    *float64 `csv:"prcp,omitempty"`
	Tobs    float64  `csv:"tobs"`
}

type Precipitation struct {
	Date string   `json:"date" example:"2017-08-23"`
	Prcp *float64 `json:"prcp" example:"0.08"`
}

type TemperatureObservation struct {
	Station string  `json:"station" example:"USC00519281"`
	Date    string  `json:"date" example:"2017-08-18"`
	Tobs    float64 `json:"tobs" example:"79"`
}

// ParseDate reads the leading YYYY-MM-DD of a stored date value.
func ParseDate(value string) (time.Time, error) {
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	return time.Parse(DateLayout, value)
}
