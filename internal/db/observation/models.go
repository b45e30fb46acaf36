package observation

import (
	"time"
)

// Observation is one row of the observations table. Several numeric readings
// are kept as text because the source data carries placeholder values that do
// not parse as numbers.
type Observation struct {
	ID                   uint   `gorm:"primaryKey;autoIncrement"`
	ObservedAt           string `gorm:"column:observed_at;index:idx_observed_at"`
	Conditions           string `gorm:"column:conditions"`
	DewPoint             *int   `gorm:"column:dew_point"`
	Fog                  *int   `gorm:"column:fog"`
	Hail                 *int   `gorm:"column:hail"`
	HeatIndex            string `gorm:"column:heat_index"`
	Humidity             *int   `gorm:"column:humidity;index:idx_humidity"`
	Precipitation        string `gorm:"column:precipitation"`
	Pressure             *int64 `gorm:"column:pressure"`
	Rain                 *int   `gorm:"column:rain"`
	Snow                 *int   `gorm:"column:snow"`
	Temperature          *int   `gorm:"column:temperature;index:idx_temperature"`
	Thunder              *int   `gorm:"column:thunder"`
	Tornado              *int   `gorm:"column:tornado"`
	Visibility           string `gorm:"column:visibility"`
	WindDirectionDegrees *int   `gorm:"column:wind_direction_degrees"`
	WindDirection        string `gorm:"column:wind_direction"`
	WindGust             string `gorm:"column:wind_gust"`
	WindChill            string `gorm:"column:wind_chill"`
	WindSpeed            string `gorm:"column:wind_speed"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Observation) TableName() string {
	return "observations"
}
