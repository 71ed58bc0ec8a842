package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"ulascansenturk/hiking-weather-service/internal/weather"
)

type WeatherService interface {
	GetConsolidatedData(ctx context.Context, lat, lon string) (weather.AggregateResult, error)
	GetRainForecast(ctx context.Context, lat, lon string) (weather.RainForecast, error)
}

type weatherService struct {
	aggregator WeatherRequestAggregator
}

func NewWeatherService(aggregator WeatherRequestAggregator) WeatherService {
	return &weatherService{
		aggregator: aggregator,
	}
}

func (s *weatherService) GetConsolidatedData(ctx context.Context, lat, lon string) (weather.AggregateResult, error) {
	coord, err := weather.ParseCoordinate(lat, lon)
	if err != nil {
		return weather.AggregateResult{}, err
	}

	result, err := s.aggregator.Aggregate(ctx, coord)
	if err != nil {
		log.Warn().Err(err).Stringer("coordinate", coord).Msg("weather aggregation failed")
		return weather.AggregateResult{}, err
	}

	log.Debug().
		Stringer("coordinate", coord).
		Float64("hiking_index", result.Indices.Score).
		Stringer("aqi", result.Weather.AQI).
		Msg("weather aggregated")

	return result, nil
}

func (s *weatherService) GetRainForecast(ctx context.Context, lat, lon string) (weather.RainForecast, error) {
	coord, err := weather.ParseCoordinate(lat, lon)
	if err != nil {
		return weather.RainForecast{}, err
	}

	forecast, err := s.aggregator.RainForecast(ctx, coord)
	if err != nil {
		log.Warn().Err(err).Stringer("coordinate", coord).Msg("rain forecast failed")
		return weather.RainForecast{}, err
	}

	return forecast, nil
}
