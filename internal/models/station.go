package models

// Station is a fixed weather-observation site.
type Station struct {
	ID        int     `json:"id" csv:"id,omitempty" example:"1"`
	Station   string  `json:"station" csv:"station" example:"USC00519397"`
	Name      string  `json:"name" csv:"name" example:"WAIKIKI 717.2, HI US"`
	Latitude  float64 `json:"latitude" csv:"latitude" example:"21.2716"`
	Longitude float64 `json:"longitude" csv:"longitude" example:"-157.8168"`
	Elevation float64 `json:"elevation" csv:"elevation" example:"3"`
}
