package indices

import (
	"fmt"
	"math"

	"ulascansenturk/hiking-weather-service/internal/weather"
)

// RainWindowHours is the number of hourly slots the rain summary covers.
const RainWindowHours = 6

// RainSample is one hourly entry as reported upstream. Nil fields were null in the response.
type RainSample struct {
	Time        string
	Probability *float64
	PrecipMM    *float64
}

// SummarizeRain builds the short-horizon forecast from the first RainWindowHours samples.
// The average divides by the number of slots actually present.
func SummarizeRain(samples []RainSample) weather.RainForecast {
	if len(samples) > RainWindowHours {
		samples = samples[:RainWindowHours]
	}

	var (
		maxProb     float64
		sawProb     bool
		totalPrecip float64
	)

	hourly := make([]weather.HourlyRain, 0, len(samples))
	for i, s := range samples {
		prob := valueOrZero(s.Probability)
		precip := valueOrZero(s.PrecipMM)

		if s.Probability != nil && (!sawProb || prob > maxProb) {
			maxProb = prob
			sawProb = true
		}
		totalPrecip += precip

		hourly = append(hourly, weather.HourlyRain{
			Time:          s.Time,
			DurationLabel: hoursFromNow(i + 1),
			Probability:   prob,
			PrecipMM:      precip,
		})
	}

	if !sawProb {
		return weather.RainForecast{
			Prediction:     weather.RainDataUnavailable,
			HourlyForecast: []weather.HourlyRain{},
		}
	}

	avg := math.Round(totalPrecip/float64(len(samples))*100) / 100

	return weather.RainForecast{
		MaxProbability: &maxProb,
		AvgRainMM:      &avg,
		Prediction:     ClassifyRain(maxProb),
		HourlyForecast: hourly,
	}
}

// ClassifyRain bins a precipitation probability in percent.
func ClassifyRain(probability float64) weather.RainPrediction {
	switch {
	case probability < 20:
		return weather.RainLowChance
	case probability < 60:
		return weather.RainModerateChance
	default:
		return weather.RainHighChance
	}
}

func hoursFromNow(n int) string {
	if n == 1 {
		return "1 hour from now"
	}
	return fmt.Sprintf("%d hours from now", n)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
