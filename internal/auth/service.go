package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"ulascansenturk/hiking-weather-service/internal/db/users"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type Config struct {
	// TokenSecret signs login tokens. When empty, Login returns no token.
	TokenSecret string
	TokenTTL    time.Duration
	Issuer      string
	BcryptCost  int
}

type service struct {
	cfg      Config
	repo     users.Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(cfg Config, repo users.Repository) Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	return &service{
		cfg:      cfg,
		repo:     repo,
		validate: newValidator(),
		now:      time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return registerMessages.toValidationError(err)
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return users.ErrAlreadyExists
	case !errors.Is(err, users.ErrNotFound):
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Create(ctx, &users.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}); err != nil {
		if errors.Is(err, users.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("create user: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("user registered")
	return nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return LoginResponse{}, loginMessages.toValidationError(err)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	resp := LoginResponse{Message: "Login successful"}
	if s.cfg.TokenSecret == "" {
		return resp, nil
	}

	token, expiresAt, err := s.issueToken(user.Email)
	if err != nil {
		return LoginResponse{}, err
	}
	resp.Token = token
	resp.ExpiresAt = expiresAt.Unix()

	return resp, nil
}

func (s *service) issueToken(email string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    s.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.TokenSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}
