package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/hiking-weather-service/internal/service"
)

var validate = validator.New()

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.consolidated(w, r, vars["lat"], vars["lon"])
}

func (h *WeatherHandler) PostWeather(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCoordinates(w, r)
	if !ok {
		return
	}
	h.consolidated(w, r, string(req.Lat), string(req.Lon))
}

func (h *WeatherHandler) GetRain(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.rain(w, r, vars["lat"], vars["lon"])
}

func (h *WeatherHandler) PostRain(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCoordinates(w, r)
	if !ok {
		return
	}
	h.rain(w, r, string(req.Lat), string(req.Lon))
}

func (h *WeatherHandler) consolidated(w http.ResponseWriter, r *http.Request, lat, lon string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.GetConsolidatedData(ctx, lat, lon)
	if err != nil {
		code, detail := statusForError(err)
		hlog.FromRequest(r).Error().Err(err).Str("lat", lat).Str("lon", lon).Msg("failed to get weather data")
		respondWithError(w, code, detail)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *WeatherHandler) rain(w http.ResponseWriter, r *http.Request, lat, lon string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	forecast, err := h.weatherService.GetRainForecast(ctx, lat, lon)
	if err != nil {
		code, detail := statusForError(err)
		hlog.FromRequest(r).Error().Err(err).Str("lat", lat).Str("lon", lon).Msg("failed to get rain forecast")
		respondWithError(w, code, detail)
		return
	}

	respondWithJSON(w, http.StatusOK, forecast)
}

func decodeCoordinates(w http.ResponseWriter, r *http.Request) (CoordinateRequest, bool) {
	var req CoordinateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return CoordinateRequest{}, false
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing lat/lon")
		return CoordinateRequest{}, false
	}

	return req, true
}
