package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/hiking-weather-service/internal/metrics"
)

type RouterConfig struct {
	Weather  *WeatherHandler
	Auth     *AuthHandler
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(hlog.NewHandler(cfg.Logger))
	r.Use(requestID)
	r.Use(accessLog(cfg.Metrics))

	r.HandleFunc("/weather/{lat}/{lon}", cfg.Weather.GetWeather).Methods(http.MethodGet)
	r.HandleFunc("/weather", cfg.Weather.PostWeather).Methods(http.MethodPost)
	r.HandleFunc("/rain/{lat}/{lon}", cfg.Weather.GetRain).Methods(http.MethodGet)
	r.HandleFunc("/rain", cfg.Weather.PostRain).Methods(http.MethodPost)

	r.HandleFunc("/register", cfg.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", cfg.Auth.Login).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}).Methods(http.MethodGet)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return cors(r)
}
