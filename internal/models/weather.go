package models

import "time"

// WeatherDayForecast is one day of a multi-day forecast.
type WeatherDayForecast struct {
	Date      time.Time `json:"date"`
	Humidity  float64   `json:"humidity"`   // percent
	WindSpeed float64   `json:"wind_speed"` // m/s
	TempMax   float64   `json:"temp_max"`   // °C
}
