package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/the-usman/task-back-end/internal/models"
	"github.com/the-usman/task-back-end/internal/services"
)

type stubAccountService struct {
	signup         func(firstName, lastName, email, password string) (string, error)
	login          func(email, password string) (models.User, error)
	sendReset      func(email string) error
	changePassword func(userID, password string) error
}

func (s *stubAccountService) Signup(_ context.Context, firstName, lastName, email, password string) (string, error) {
	return s.signup(firstName, lastName, email, password)
}

func (s *stubAccountService) Login(_ context.Context, email, password string) (models.User, error) {
	return s.login(email, password)
}

func (s *stubAccountService) SendPasswordReset(_ context.Context, email string) error {
	return s.sendReset(email)
}

func (s *stubAccountService) ChangePassword(_ context.Context, userID, password string) error {
	return s.changePassword(userID, password)
}

func doJSON(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "user" {
			return c
		}
	}
	return nil
}

func TestSignupHandler(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{
		signup: func(firstName, lastName, email, password string) (string, error) {
			assert.Equal(t, "John", firstName)
			assert.Equal(t, "Doe", lastName)
			return "doc-1", nil
		},
	})

	rec, body := doJSON(t, h.Signup, `{"firstName":"John","lastName":"Doe","email":"john@example.com","password":"Str0ng@Pass"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "doc-1", body["user"])

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "doc-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Zero(t, cookie.MaxAge)
}

func TestSignupHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid email", services.ErrInvalidEmail, http.StatusUnauthorized, "Invalid email"},
		{"duplicate user", services.ErrUserExists, http.StatusUnauthorized, "User already exists"},
		{"weak password", services.ErrWeakPassword, http.StatusUnauthorized, "Password strong password required"},
		{"store failure", errors.New("store unavailable"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAccountHandler(&stubAccountService{
				signup: func(_, _, _, _ string) (string, error) { return "", tt.err },
			})

			rec, body := doJSON(t, h.Signup, `{"email":"john@example.com","password":"x"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
			assert.Nil(t, sessionCookie(t, rec))
		})
	}
}

func TestSignupHandlerMalformedBody(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	rec, body := doJSON(t, h.Signup, `{"email":`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestLoginHandler(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{
		login: func(email, password string) (models.User, error) {
			return models.User{ID: "doc-1", Email: email}, nil
		},
	})

	rec, body := doJSON(t, h.Login, `{"email":"john@example.com","password":"Str0ng@Pass"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "doc-1", user["id"])
	assert.Equal(t, "john@example.com", user["email"])

	// The hash must never appear in the response.
	_, present := user["password"]
	assert.False(t, present)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "doc-1", cookie.Value)
}

func TestLoginHandlerMissingFields(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	for _, body := range []string{`{}`, `{"email":"john@example.com"}`, `{"password":"x"}`} {
		rec, decoded := doJSON(t, h.Login, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email and password are required", decoded["error"])
	}
}

func TestLoginHandlerErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError string
	}{
		{"unknown email", services.ErrUserNotFound, "User not found"},
		{"wrong password", services.ErrInvalidPassword, "Invalid password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAccountHandler(&stubAccountService{
				login: func(_, _ string) (models.User, error) { return models.User{}, tt.err },
			})

			rec, body := doJSON(t, h.Login, `{"email":"john@example.com","password":"x"}`)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantError, body["error"])
			assert.Nil(t, sessionCookie(t, rec))
		})
	}
}

func TestForgotPasswordHandler(t *testing.T) {
	var sentTo string
	h := NewAccountHandler(&stubAccountService{
		sendReset: func(email string) error {
			sentTo = email
			return nil
		},
	})

	rec, body := doJSON(t, h.ForgotPassword, `{"email":"john@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Password reset email sent successfully", body["message"])
	assert.Equal(t, "john@example.com", sentTo)
}

func TestForgotPasswordHandlerInvalidEmail(t *testing.T) {
	called := false
	h := NewAccountHandler(&stubAccountService{
		sendReset: func(string) error { called = true; return nil },
	})

	rec, body := doJSON(t, h.ForgotPassword, `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email", body["error"])
	assert.False(t, called)
}

// Disposable addresses pass forgot-password; only the syntax gate applies.
func TestForgotPasswordHandlerDisposableEmail(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{
		sendReset: func(string) error { return nil },
	})

	rec, _ := doJSON(t, h.ForgotPassword, `{"email":"john@mailinator.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestForgotPasswordHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"unknown user", services.ErrUserNotFound, http.StatusNotFound, "No user found"},
		{"send failure", services.ErrMailSend, http.StatusInternalServerError, "Failed to send password reset email"},
		{"store failure", errors.New("store unavailable"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAccountHandler(&stubAccountService{
				sendReset: func(string) error { return tt.err },
			})

			rec, body := doJSON(t, h.ForgotPassword, `{"email":"john@example.com"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestChangePasswordHandler(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{
		changePassword: func(userID, password string) error {
			assert.Equal(t, "doc-1", userID)
			assert.Equal(t, "N3w@Secret", password)
			return nil
		},
	})

	rec, body := doJSON(t, h.ChangePassword, `{"userId":"doc-1","password":"N3w@Secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestChangePasswordHandlerMissingFields(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	rec, body := doJSON(t, h.ChangePassword, `{"password":"N3w@Secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User ID is required", body["error"])

	rec, body = doJSON(t, h.ChangePassword, `{"userId":"doc-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password is required", body["error"])
}

func TestChangePasswordHandlerUnknownUser(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{
		changePassword: func(_, _ string) error { return services.ErrUserNotFound },
	})

	rec, body := doJSON(t, h.ChangePassword, `{"userId":"missing","password":"N3w@Secret"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No user found", body["error"])
}
