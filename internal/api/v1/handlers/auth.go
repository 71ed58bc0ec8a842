package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"ulascansenturk/hiking-weather-service/internal/auth"
)

type AuthHandler struct {
	authService auth.Service
	timeout     time.Duration
}

func NewAuthHandler(authService auth.Service, timeout time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		timeout:     timeout,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.authService.Register(ctx, req); err != nil {
		code, detail := statusForError(err)
		if code >= http.StatusInternalServerError {
			hlog.FromRequest(r).Error().Err(err).Msg("register failed")
		}
		respondWithError(w, code, detail)
		return
	}

	respondWithJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.authService.Login(ctx, req)
	if err != nil {
		code, detail := statusForError(err)
		if code >= http.StatusInternalServerError {
			hlog.FromRequest(r).Error().Err(err).Msg("login failed")
		}
		respondWithError(w, code, detail)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
