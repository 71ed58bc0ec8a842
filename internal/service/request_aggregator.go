package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"ulascansenturk/hiking-weather-service/internal/astronomy"
	"ulascansenturk/hiking-weather-service/internal/indices"
	"ulascansenturk/hiking-weather-service/internal/providers"
	"ulascansenturk/hiking-weather-service/internal/weather"
)

type WeatherRequestAggregator interface {
	Aggregate(ctx context.Context, coord weather.Coordinate) (weather.AggregateResult, error)
	RainForecast(ctx context.Context, coord weather.Coordinate) (weather.RainForecast, error)
}

type AggregatorOption func(*weatherAggregator)

// WithClock replaces time.Now as the source of the request instant.
func WithClock(now func() time.Time) AggregatorOption {
	return func(w *weatherAggregator) {
		w.now = now
	}
}

// weatherAggregator keeps no state between requests; every call does its own fetches.
type weatherAggregator struct {
	weatherAPI providers.WeatherAPIService
	location   *time.Location
	now        func() time.Time
}

// NewWeatherRequestAggregator builds the aggregator. Sun times are formatted in location.
func NewWeatherRequestAggregator(
	weatherAPI providers.WeatherAPIService,
	location *time.Location,
	opts ...AggregatorOption,
) WeatherRequestAggregator {
	if location == nil {
		location = time.UTC
	}

	w := &weatherAggregator{
		weatherAPI: weatherAPI,
		location:   location,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Aggregate fetches the weather snapshot while computing sun times, then derives
// the hiking index. A failed fetch fails the whole result.
func (w *weatherAggregator) Aggregate(ctx context.Context, coord weather.Coordinate) (weather.AggregateResult, error) {
	now := w.now()

	var (
		snapshot weather.Snapshot
		sun      weather.SunTimes
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := w.weatherAPI.GetWeatherData(gctx, coord)
		if err != nil {
			return err
		}
		snapshot = s
		return nil
	})

	g.Go(func() error {
		sun = astronomy.SunTimes(coord, now, w.location)
		return nil
	})

	moon := astronomy.MoonPhase(now)

	if err := g.Wait(); err != nil {
		return weather.AggregateResult{}, err
	}

	return weather.AggregateResult{
		Weather: snapshot,
		Sun:     sun,
		Moon:    moon,
		Indices: indices.Hiking(snapshot),
	}, nil
}

func (w *weatherAggregator) RainForecast(ctx context.Context, coord weather.Coordinate) (weather.RainForecast, error) {
	return w.weatherAPI.GetRainForecast(ctx, coord)
}
