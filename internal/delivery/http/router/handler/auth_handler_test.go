package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portal/internal/delivery/middleware"
	"portal/internal/delivery/validator"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns canned results so handler tests can exercise the
// full bind/validate/respond path without the real service.
type stubAuthUsecase struct {
	registerView *usecase.UserView
	registerErr  error
	loginOutput  *usecase.LoginOutput
	loginErr     error
}

func (s *stubAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserView, error) {
	return s.registerView, s.registerErr
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func newAuthTestServer(uc usecase.AuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/api/v1/auth/register", h.Register)
	e.POST("/api/v1/auth/login", h.Login)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	view := &usecase.UserView{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	e := newAuthTestServer(&stubAuthUsecase{registerView: view})

	rec := postJSON(e, "/api/v1/auth/register", `{"email":"alice@example.com","password":"Sup3rSecret!"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, view.ID.String(), body["id"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Contains(t, body, "createdAt")
	// The stored hash must never appear in the response.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{})

	payloads := []string{
		`{}`,
		`{"email":"alice@example.com"}`,
		`{"password":"Sup3rSecret!"}`,
		`{"email":"alice@example.com","password":12345678}`,
		`not-json`,
	}
	for _, payload := range payloads {
		rec := postJSON(e, "/api/v1/auth/register", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", payload)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Email and password are required and must be strings.", body["message"])
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{
		registerErr: domainerrors.ErrWeakPassword.WrapMessage("password too short"),
	})

	rec := postJSON(e, "/api/v1/auth/register", `{"email":"alice@example.com","password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t,
		"Password must be at least 8 characters long and include at least one alphabetical character, one number, and one special symbol.",
		body["message"])
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{
		registerErr: domainerrors.ErrUserAlreadyExists.WrapMessage("registration conflict"),
	})

	rec := postJSON(e, "/api/v1/auth/register", `{"email":"alice@example.com","password":"Sup3rSecret!"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User already exists with this email.", body["message"])
}

func TestAuthHandler_Register_UnexpectedError(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{
		registerErr: assert.AnError,
	})

	rec := postJSON(e, "/api/v1/auth/register", `{"email":"alice@example.com","password":"Sup3rSecret!"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body["message"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	output := &usecase.LoginOutput{
		User: &usecase.UserView{
			ID:        uuid.New(),
			Email:     "alice@example.com",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Token: "signed.jwt.token",
	}
	e := newAuthTestServer(&stubAuthUsecase{loginOutput: output})

	rec := postJSON(e, "/api/v1/auth/login", `{"email":"alice@example.com","password":"Sup3rSecret!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.token", body.Token)
	require.NotNil(t, body.User)
	assert.Equal(t, "alice@example.com", body.User["email"])
	assert.NotContains(t, body.User, "password")
	assert.NotContains(t, body.User, "passwordHash")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{
		loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("login failed"),
	})

	// The same status and body regardless of which credential was wrong.
	rec := postJSON(e, "/api/v1/auth/login", `{"email":"alice@example.com","password":"wrong-password1!"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid email or password.", body["message"])
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newAuthTestServer(&stubAuthUsecase{})

	rec := postJSON(e, "/api/v1/auth/login", `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email and password are required and must be strings.", body["message"])
}
