package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/PizzaBo93/posapppizza/internal/middleware"
	"github.com/PizzaBo93/posapppizza/internal/models"
	"github.com/PizzaBo93/posapppizza/internal/services"
	"github.com/PizzaBo93/posapppizza/internal/store"
)

type AuthHandler struct {
	store    *store.Client
	sessions *services.SessionService
	logger   zerolog.Logger
}

func NewAuthHandler(storeClient *store.Client, sessions *services.SessionService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		store:    storeClient,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies the submitted credentials against the store's
// verify_staff_login RPC, attaches the role's permission set and sets the
// session cookie. The password is forwarded to the store and never logged.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	result, err := h.store.Rpc(r.Context(), "verify_staff_login", map[string]string{
		"p_username": creds.Username,
		"p_password": creds.Password,
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("username", creds.Username).Msg("Login verification failed")
		h.respondWithError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}

	var staff []models.StaffRecord
	if err := json.Unmarshal(result, &staff); err != nil || len(staff) == 0 {
		h.logger.Warn().Str("username", creds.Username).Msg("Login rejected by store")
		h.respondWithError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}

	record := staff[0]
	user := &models.User{
		ID:          record.UserID,
		Username:    record.Username,
		FullName:    record.FullName,
		StoreCode:   record.StoreCode,
		Role:        record.Role,
		Permissions: services.PermissionsFor(record.Role),
	}

	token, err := h.sessions.CreateSession(user)
	if err != nil {
		h.logger.Error().Err(err).Msg("Session creation failed")
		h.respondWithError(w, http.StatusInternalServerError, "session_failed", "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("User logged in")
	h.respondWithJSON(w, http.StatusOK, user)
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side session store to invalidate.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	h.respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func (h *AuthHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
