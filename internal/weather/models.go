package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const aqiUnavailable = "unavailable"

// AQI is an air quality reading that may be missing when the provider
// returned an empty or all-null series.
type AQI struct {
	Value     float64
	Available bool
}

func AQIValue(v float64) AQI {
	return AQI{Value: v, Available: true}
}

func AQIUnavailable() AQI {
	return AQI{}
}

// Exceeds reports whether a present reading is above limit. A missing reading never exceeds.
func (a AQI) Exceeds(limit float64) bool {
	return a.Available && a.Value > limit
}

func (a AQI) MarshalJSON() ([]byte, error) {
	if !a.Available {
		return json.Marshal(aqiUnavailable)
	}
	return json.Marshal(a.Value)
}

func (a *AQI) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = AQIUnavailable()
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != aqiUnavailable {
			return fmt.Errorf("unexpected aqi value %q", s)
		}
		*a = AQIUnavailable()
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = AQIValue(v)
	return nil
}

func (a AQI) String() string {
	if !a.Available {
		return aqiUnavailable
	}
	return fmt.Sprintf("%g", a.Value)
}

// Snapshot is the normalized current conditions for one coordinate.
type Snapshot struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	CloudCover    float64 `json:"cloud_cover"`
	UVIndex       float64 `json:"uv_index"`
	AQI           AQI     `json:"aqi"`
}

type SunTimes struct {
	Sunrise    string `json:"sunrise"`
	Sunset     string `json:"sunset"`
	GoldenHour string `json:"golden_hour"`
}

type PhaseName string

const (
	PhaseNewMoon        PhaseName = "new moon"
	PhaseWaxingCrescent PhaseName = "waxing crescent"
	PhaseFirstQuarter   PhaseName = "first quarter"
	PhaseWaxingGibbous  PhaseName = "waxing gibbous"
	PhaseFullMoon       PhaseName = "full moon"
	PhaseWaningGibbous  PhaseName = "waning gibbous"
	PhaseLastQuarter    PhaseName = "last quarter"
	PhaseWaningCrescent PhaseName = "waning crescent"
)

type MoonPhase struct {
	PhaseName    PhaseName `json:"phase_name"`
	Illumination float64   `json:"illumination"`
}

type Recommendation string

const (
	RecommendationExcellent      Recommendation = "excellent"
	RecommendationFair           Recommendation = "fair, watch weather"
	RecommendationNotAdvised     Recommendation = "not advised, suboptimal"
	RecommendationNotRecommended Recommendation = "not recommended today"
)

type HikingIndex struct {
	Score          float64        `json:"hiking_index"`
	Recommendation Recommendation `json:"hiking_recommendation"`
}

type RainPrediction string

const (
	RainLowChance       RainPrediction = "low chance"
	RainModerateChance  RainPrediction = "moderate chance"
	RainHighChance      RainPrediction = "high chance"
	RainDataUnavailable RainPrediction = "forecast data unavailable"
)

// HourlyRain is one slot of the short-horizon rain forecast.
type HourlyRain struct {
	Time          string  `json:"time,omitempty"`
	DurationLabel string  `json:"duration_label"`
	Probability   float64 `json:"probability"`
	PrecipMM      float64 `json:"precip_mm"`
}

// RainForecast summarizes the next hours of precipitation. Numeric fields are
// nil when the provider returned no probability data.
type RainForecast struct {
	MaxProbability *float64       `json:"max_probability"`
	AvgRainMM      *float64       `json:"avg_rain_mm"`
	Prediction     RainPrediction `json:"prediction"`
	HourlyForecast []HourlyRain   `json:"hourly_forecast"`
}

type AggregateResult struct {
	Weather Snapshot    `json:"weather"`
	Sun     SunTimes    `json:"sun"`
	Moon    MoonPhase   `json:"moon"`
	Indices HikingIndex `json:"indices"`
}
