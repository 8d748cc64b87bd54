package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/the-usman/task-back-end/internal/services"
	"github.com/the-usman/task-back-end/internal/validate"
)

// AccountHandler handles HTTP requests for the account workflow.
type AccountHandler struct {
	service services.AccountServiceProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider) *AccountHandler {
	return &AccountHandler{service: service}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordPayload defines the structure for password-reset requests.
type ForgotPasswordPayload struct {
	Email string `json:"email"`
}

// ChangePasswordPayload defines the structure for password-change requests.
type ChangePasswordPayload struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// setSessionCookie hands the record id to the client as an opaque session
// cookie. No endpoint reads it back; it carries no expiry or signature.
func setSessionCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "user",
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
}

// Signup handles new account registration.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondInternalError(w, err)
		return
	}

	id, err := h.service.Signup(r.Context(), payload.FirstName, payload.LastName, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "Invalid email", "success": false})
		case errors.Is(err, services.ErrUserExists):
			respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "User already exists"})
		case errors.Is(err, services.ErrWeakPassword):
			respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "Password strong password required", "success": false})
		default:
			respondInternalError(w, err)
		}
		return
	}

	setSessionCookie(w, id)
	respondJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "user": id})
}

// Login handles authentication by email and password.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondInternalError(w, err)
		return
	}

	if payload.Email == "" || payload.Password == "" {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Email and password are required", "success": false})
		return
	}

	user, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "User not found", "success": false})
		case errors.Is(err, services.ErrInvalidPassword):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "Invalid password", "success": false})
		default:
			respondInternalError(w, err)
		}
		return
	}

	setSessionCookie(w, user.ID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    map[string]interface{}{"id": user.ID, "email": user.Email},
	})
}

// ForgotPassword mails a reset link to a registered address. Only the
// syntactic email check applies here; the disposable-domain heuristic is
// a signup-only gate.
func (h *AccountHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload ForgotPasswordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondInternalError(w, err)
		return
	}

	if !validate.EmailSyntax(payload.Email) {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "Invalid email", "success": false})
		return
	}

	if err := h.service.SendPasswordReset(r.Context(), payload.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondJSON(w, http.StatusNotFound, map[string]interface{}{"error": "No user found", "success": false})
		case errors.Is(err, services.ErrMailSend):
			respondJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "Failed to send password reset email", "success": false})
		default:
			respondInternalError(w, err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"message": "Password reset email sent successfully", "success": true})
}

// ChangePassword overwrites the password of the record named in the body.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var payload ChangePasswordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondInternalError(w, err)
		return
	}

	if payload.UserID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "User ID is required", "success": false})
		return
	}
	if payload.Password == "" {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Password is required", "success": false})
		return
	}

	if err := h.service.ChangePassword(r.Context(), payload.UserID, payload.Password); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]interface{}{"error": "No user found", "success": false})
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
