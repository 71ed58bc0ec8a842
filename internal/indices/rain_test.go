package indices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/hiking-weather-service/internal/indices"
	"ulascansenturk/hiking-weather-service/internal/weather"
)

func ptr(v float64) *float64 {
	return &v
}

func TestClassifyRain(t *testing.T) {
	assert.Equal(t, weather.RainLowChance, indices.ClassifyRain(0))
	assert.Equal(t, weather.RainLowChance, indices.ClassifyRain(15))
	assert.Equal(t, weather.RainModerateChance, indices.ClassifyRain(20))
	assert.Equal(t, weather.RainModerateChance, indices.ClassifyRain(45))
	assert.Equal(t, weather.RainHighChance, indices.ClassifyRain(60))
	assert.Equal(t, weather.RainHighChance, indices.ClassifyRain(75))
}

func TestSummarizeRain(t *testing.T) {
	t.Run("full window", func(t *testing.T) {
		samples := []indices.RainSample{
			{Time: "2025-01-01T10:00", Probability: ptr(10), PrecipMM: ptr(0)},
			{Time: "2025-01-01T11:00", Probability: ptr(35), PrecipMM: ptr(0.6)},
			{Time: "2025-01-01T12:00", Probability: ptr(75), PrecipMM: ptr(2.4)},
			{Time: "2025-01-01T13:00", Probability: ptr(40), PrecipMM: ptr(1.2)},
			{Time: "2025-01-01T14:00", Probability: ptr(20), PrecipMM: ptr(0.3)},
			{Time: "2025-01-01T15:00", Probability: ptr(5), PrecipMM: ptr(0.0)},
		}

		got := indices.SummarizeRain(samples)

		require.NotNil(t, got.MaxProbability)
		require.NotNil(t, got.AvgRainMM)
		assert.Equal(t, 75.0, *got.MaxProbability)
		assert.Equal(t, 0.75, *got.AvgRainMM)
		assert.Equal(t, weather.RainHighChance, got.Prediction)
		require.Len(t, got.HourlyForecast, 6)
		assert.Equal(t, "1 hour from now", got.HourlyForecast[0].DurationLabel)
		assert.Equal(t, "6 hours from now", got.HourlyForecast[5].DurationLabel)
		assert.Equal(t, 75.0, got.HourlyForecast[2].Probability)
		assert.Equal(t, 2.4, got.HourlyForecast[2].PrecipMM)
		assert.Equal(t, "2025-01-01T12:00", got.HourlyForecast[2].Time)
	})

	t.Run("longer series is cut to the window", func(t *testing.T) {
		samples := make([]indices.RainSample, 0, 8)
		for i := 0; i < 8; i++ {
			samples = append(samples, indices.RainSample{Probability: ptr(10), PrecipMM: ptr(1)})
		}
		samples[7].Probability = ptr(99)

		got := indices.SummarizeRain(samples)

		assert.Len(t, got.HourlyForecast, indices.RainWindowHours)
		assert.Equal(t, 10.0, *got.MaxProbability)
		assert.Equal(t, weather.RainLowChance, got.Prediction)
	})

	t.Run("short series averages over present slots", func(t *testing.T) {
		samples := []indices.RainSample{
			{Probability: ptr(45), PrecipMM: ptr(1)},
			{Probability: ptr(30), PrecipMM: ptr(2)},
		}

		got := indices.SummarizeRain(samples)

		assert.Equal(t, 1.5, *got.AvgRainMM)
		assert.Equal(t, weather.RainModerateChance, got.Prediction)
		assert.Len(t, got.HourlyForecast, 2)
	})

	t.Run("null amounts count as zero", func(t *testing.T) {
		samples := []indices.RainSample{
			{Probability: ptr(15), PrecipMM: ptr(3)},
			{Probability: nil, PrecipMM: nil},
		}

		got := indices.SummarizeRain(samples)

		assert.Equal(t, 15.0, *got.MaxProbability)
		assert.Equal(t, 1.5, *got.AvgRainMM)
		assert.Equal(t, 0.0, got.HourlyForecast[1].Probability)
	})

	t.Run("empty series degrades", func(t *testing.T) {
		got := indices.SummarizeRain(nil)

		assert.Nil(t, got.MaxProbability)
		assert.Nil(t, got.AvgRainMM)
		assert.Equal(t, weather.RainDataUnavailable, got.Prediction)
		assert.Empty(t, got.HourlyForecast)
	})

	t.Run("all null probabilities degrade", func(t *testing.T) {
		got := indices.SummarizeRain([]indices.RainSample{{PrecipMM: ptr(1)}, {}})

		assert.Nil(t, got.MaxProbability)
		assert.Equal(t, weather.RainDataUnavailable, got.Prediction)
	})
}
