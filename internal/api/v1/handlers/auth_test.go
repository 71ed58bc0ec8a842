package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/stretchr/testify/mock"
	"ulascansenturk/hiking-weather-service/internal/api/v1/handlers"
	"ulascansenturk/hiking-weather-service/internal/auth"
	"ulascansenturk/hiking-weather-service/internal/db/users"
)

func (s *WeatherHandlerTestSuite) TestRegisterSuccess() {
	req := auth.RegisterRequest{Email: "ranger@gmail.com", Password: "trailmix42", ConfirmPassword: "trailmix42"}
	s.mockAuth.On("Register", mock.Anything, req).Return(nil)

	recorder := s.serve(http.MethodPost, "/register",
		strings.NewReader(`{"email":"ranger@gmail.com","password":"trailmix42","confirmPassword":"trailmix42"}`))

	s.Equal(http.StatusCreated, recorder.Code)

	var response handlers.MessageResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("User registered successfully", response.Message)
}

func (s *WeatherHandlerTestSuite) TestRegisterValidationError() {
	s.mockAuth.On("Register", mock.Anything, mock.Anything).
		Return(&auth.ValidationError{Message: "Confirm password doesn't match the password above!"})

	recorder := s.serve(http.MethodPost, "/register",
		strings.NewReader(`{"email":"ranger@gmail.com","password":"trailmix42","confirmPassword":"trailmix43"}`))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("Confirm password doesn't match the password above!", s.decodeError(recorder).Detail)
}

func (s *WeatherHandlerTestSuite) TestRegisterDuplicate() {
	s.mockAuth.On("Register", mock.Anything, mock.Anything).Return(users.ErrAlreadyExists)

	recorder := s.serve(http.MethodPost, "/register",
		strings.NewReader(`{"email":"ranger@gmail.com","password":"trailmix42","confirmPassword":"trailmix42"}`))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("Email already registered", s.decodeError(recorder).Detail)
}

func (s *WeatherHandlerTestSuite) TestRegisterMalformedBody() {
	recorder := s.serve(http.MethodPost, "/register", strings.NewReader(`not json`))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("invalid request body", s.decodeError(recorder).Detail)
	s.mockAuth.AssertNotCalled(s.T(), "Register")
}

func (s *WeatherHandlerTestSuite) TestRegisterStoreFailure() {
	s.mockAuth.On("Register", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	recorder := s.serve(http.MethodPost, "/register",
		strings.NewReader(`{"email":"ranger@gmail.com","password":"trailmix42","confirmPassword":"trailmix42"}`))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Equal("INTERNAL_ERROR", s.decodeError(recorder).Code)
}

func (s *WeatherHandlerTestSuite) TestLoginSuccess() {
	req := auth.LoginRequest{Email: "ranger@gmail.com", Password: "trailmix42"}
	s.mockAuth.On("Login", mock.Anything, req).Return(auth.LoginResponse{
		Message:   "Login successful",
		Token:     "signed.jwt.token",
		ExpiresAt: 1704891600,
	}, nil)

	recorder := s.serve(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ranger@gmail.com","password":"trailmix42"}`))

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"message":"Login successful","token":"signed.jwt.token","expires_at":1704891600}`, recorder.Body.String())
}

func (s *WeatherHandlerTestSuite) TestLoginWrongCredentials() {
	s.mockAuth.On("Login", mock.Anything, mock.Anything).Return(auth.LoginResponse{}, auth.ErrInvalidCredentials)

	recorder := s.serve(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ranger@gmail.com","password":"wrongpass1"}`))

	s.Equal(http.StatusUnauthorized, recorder.Code)
	apiErr := s.decodeError(recorder)
	s.Equal("UNAUTHORIZED", apiErr.Code)
	s.Equal("Wrong email or password!", apiErr.Detail)
}

func (s *WeatherHandlerTestSuite) TestLoginWrongMethod() {
	recorder := s.serve(http.MethodGet, "/login", nil)

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
	s.mockAuth.AssertNotCalled(s.T(), "Login")
}
