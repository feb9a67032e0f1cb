package models

// TemperatureSummary holds aggregates over the matched measurements.
// All fields are nil when nothing matched.
type TemperatureSummary struct {
	MinTemp *float64 `json:"min_temp" example:"53"`
	AvgTemp *float64 `json:"avg_temp" example:"73.09795396419437"`
	MaxTemp *float64 `json:"max_temp" example:"87"`
}

// Empty reports whether the summary was computed over zero rows.
func (s TemperatureSummary) Empty() bool {
	return s.MinTemp == nil && s.AvgTemp == nil && s.MaxTemp == nil
}
