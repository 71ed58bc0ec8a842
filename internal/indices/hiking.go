// Package indices derives composite metrics from normalized weather readings.
// Every function here is pure.
package indices

import (
	"math"

	"ulascansenturk/hiking-weather-service/internal/weather"
)

const (
	baseScore = 10.0
	minScore  = 0.0
	maxScore  = 10.0
)

// Hiking scores a snapshot for hiking by applying fixed threshold penalties to a base of 10.
func Hiking(s weather.Snapshot) weather.HikingIndex {
	score := baseScore

	// only one temperature penalty ever applies
	if s.Temperature > 33 {
		score -= 3
	} else if s.Temperature < 18 {
		score -= 2
	}

	if s.Precipitation > 1 {
		score -= 4
	}
	if s.UVIndex > 8 {
		score -= 2
	}
	if s.AQI.Exceeds(100) {
		score -= 3
	}
	if s.CloudCover > 80 {
		score -= 1
	}

	score = math.Round(clamp(score, minScore, maxScore)*10) / 10

	return weather.HikingIndex{
		Score:          score,
		Recommendation: Recommend(score),
	}
}

// Recommend maps a clamped score to its recommendation bin, checked from the top down.
func Recommend(score float64) weather.Recommendation {
	switch {
	case score >= 8:
		return weather.RecommendationExcellent
	case score >= 5:
		return weather.RecommendationFair
	case score >= 3:
		return weather.RecommendationNotAdvised
	default:
		return weather.RecommendationNotRecommended
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
