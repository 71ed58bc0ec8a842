package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"ulascansenturk/hiking-weather-service/internal/indices"
	"ulascansenturk/hiking-weather-service/internal/metrics"
	"ulascansenturk/hiking-weather-service/internal/weather"
)

const (
	DefaultForecastBaseURL   = "https://api.open-meteo.com/v1/forecast"
	DefaultAirQualityBaseURL = "https://air-quality-api.open-meteo.com/v1/air-quality"
	DefaultTimezone          = "Asia/Jakarta"
	DefaultTimeout           = 10 * time.Second

	ProviderForecast   = "forecast"
	ProviderAirQuality = "air-quality"
)

type WeatherAPIService interface {
	GetWeatherData(ctx context.Context, coord weather.Coordinate) (weather.Snapshot, error)
	GetRainForecast(ctx context.Context, coord weather.Coordinate) (weather.RainForecast, error)
	GetHTTPClient() *http.Client
}

// Config points the client at the Open-Meteo endpoints. Zero values fall back to the public API.
type Config struct {
	ForecastBaseURL   string
	AirQualityBaseURL string
	// Timezone is the IANA name the hourly rain window is reported in.
	Timezone string
	// Timeout bounds every single upstream call.
	Timeout time.Duration
}

type weatherAPIService struct {
	cfg     Config
	client  *http.Client
	metrics *metrics.Collector
}

func NewWeatherAPIService(cfg Config, collector *metrics.Collector) WeatherAPIService {
	if cfg.ForecastBaseURL == "" {
		cfg.ForecastBaseURL = DefaultForecastBaseURL
	}
	if cfg.AirQualityBaseURL == "" {
		cfg.AirQualityBaseURL = DefaultAirQualityBaseURL
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &weatherAPIService{
		cfg:     cfg,
		metrics: collector,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type currentResponse struct {
	Current *struct {
		Temperature   float64 `json:"temperature_2m"`
		Precipitation float64 `json:"precipitation"`
		CloudCover    float64 `json:"cloud_cover"`
		UVIndex       float64 `json:"uv_index"`
	} `json:"current"`
}

type airQualityResponse struct {
	Hourly struct {
		EuropeanAQI []*float64 `json:"european_aqi"`
	} `json:"hourly"`
}

type hourlyRainResponse struct {
	Hourly struct {
		Time                     []string   `json:"time"`
		PrecipitationProbability []*float64 `json:"precipitation_probability"`
		Precipitation            []*float64 `json:"precipitation"`
	} `json:"hourly"`
}

type errorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// GetWeatherData fetches current conditions and air quality concurrently. Either
// call failing fails the whole fetch and cancels the other.
func (s *weatherAPIService) GetWeatherData(ctx context.Context, coord weather.Coordinate) (weather.Snapshot, error) {
	var (
		snapshot weather.Snapshot
		aqi      weather.AQI
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		current, err := s.getCurrentConditions(gctx, coord)
		if err != nil {
			return err
		}
		snapshot = current
		return nil
	})

	g.Go(func() error {
		reading, err := s.getAirQuality(gctx, coord)
		if err != nil {
			return err
		}
		aqi = reading
		return nil
	})

	if err := g.Wait(); err != nil {
		return weather.Snapshot{}, err
	}

	snapshot.AQI = aqi
	return snapshot, nil
}

func (s *weatherAPIService) getCurrentConditions(ctx context.Context, coord weather.Coordinate) (weather.Snapshot, error) {
	query := coordinateQuery(coord)
	query.Set("current", "temperature_2m,precipitation,cloud_cover,uv_index")
	query.Set("timezone", "auto")

	var resp currentResponse
	if err := s.getJSON(ctx, ProviderForecast, s.cfg.ForecastBaseURL, query, &resp); err != nil {
		return weather.Snapshot{}, err
	}

	if resp.Current == nil {
		return weather.Snapshot{}, &weather.UpstreamError{
			Provider: ProviderForecast,
			Err:      errors.New("response is missing current conditions"),
		}
	}

	return weather.Snapshot{
		Temperature:   resp.Current.Temperature,
		Precipitation: resp.Current.Precipitation,
		CloudCover:    resp.Current.CloudCover,
		UVIndex:       resp.Current.UVIndex,
	}, nil
}

func (s *weatherAPIService) getAirQuality(ctx context.Context, coord weather.Coordinate) (weather.AQI, error) {
	query := coordinateQuery(coord)
	query.Set("hourly", "european_aqi")
	query.Set("timezone", "auto")

	var resp airQualityResponse
	if err := s.getJSON(ctx, ProviderAirQuality, s.cfg.AirQualityBaseURL, query, &resp); err != nil {
		return weather.AQI{}, err
	}

	return latestAQI(resp.Hourly.EuropeanAQI), nil
}

// GetRainForecast fetches the next hours of precipitation and summarizes them.
func (s *weatherAPIService) GetRainForecast(ctx context.Context, coord weather.Coordinate) (weather.RainForecast, error) {
	query := coordinateQuery(coord)
	query.Set("hourly", "precipitation_probability,precipitation")
	query.Set("forecast_hours", strconv.Itoa(indices.RainWindowHours))
	query.Set("timezone", s.cfg.Timezone)

	var resp hourlyRainResponse
	if err := s.getJSON(ctx, ProviderForecast, s.cfg.ForecastBaseURL, query, &resp); err != nil {
		return weather.RainForecast{}, err
	}

	hourly := resp.Hourly
	samples := make([]indices.RainSample, 0, len(hourly.PrecipitationProbability))
	for i, prob := range hourly.PrecipitationProbability {
		sample := indices.RainSample{Probability: prob}
		if i < len(hourly.Time) {
			sample.Time = hourly.Time[i]
		}
		if i < len(hourly.Precipitation) {
			sample.PrecipMM = hourly.Precipitation[i]
		}
		samples = append(samples, sample)
	}

	return indices.SummarizeRain(samples), nil
}

func (s *weatherAPIService) GetHTTPClient() *http.Client {
	return s.client
}

// getJSON issues one GET under its own deadline and decodes a 2xx body into out.
func (s *weatherAPIService) getJSON(ctx context.Context, provider, baseURL string, query url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	started := time.Now()
	outcome := "success"
	defer func() {
		s.metrics.RecordUpstream(provider, outcome, time.Since(started))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		outcome = "request_error"
		return &weather.UpstreamError{Provider: provider, Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		outcome = "transport_error"
		return &weather.UpstreamError{Provider: provider, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = "status_error"
		return statusError(provider, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return &weather.UpstreamError{Provider: provider, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	return nil
}

func statusError(provider string, resp *http.Response) error {
	upstreamErr := &weather.UpstreamError{Provider: provider, StatusCode: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Reason != "" {
		upstreamErr.Err = errors.New(apiErr.Reason)
	}

	return upstreamErr
}

// latestAQI returns the last non-null reading, searching from the end of the series.
func latestAQI(series []*float64) weather.AQI {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i] != nil {
			return weather.AQIValue(*series[i])
		}
	}
	return weather.AQIUnavailable()
}

func coordinateQuery(coord weather.Coordinate) url.Values {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	return query
}
