package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type apiResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Router mounts the login/logout endpoints.
//
//	r := chi.NewRouter()
//	r.Mount("/auth", auth.Router(svc))
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", svc.handleLogin)
	r.Post("/logout", svc.handleLogout)

	return r
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "email and password are required"})
		return
	}

	record, err := s.Login(r.Context(), w, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, apiResponse{Error: "invalid email or password"})
			return
		}
		s.log.ErrorContext(r.Context(), "login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Error: "login failed"})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data:    map[string]any{"user_id": record.UserID.String()},
	})
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Logout(r.Context(), w, r); err != nil {
		s.log.ErrorContext(r.Context(), "logout cleanup failed", "error", err)
	}

	// The cookie is cleared either way; a failed store delete is retried by
	// the store's TTL expiry.
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
