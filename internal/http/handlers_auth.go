package http

import (
	"log/slog"
	"net/http"
	"strings"

	"fintrack/internal/core"
)

// The identity layer is simulated: any credentials mint a session user that
// lives in the user slot until logout. There is no password verification and
// no session token, the stored user IS the session.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	email := sanitizeInput(req.Email)
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	user := core.User{
		ID:    core.NewID(),
		Name:  nameFromEmail(email),
		Email: email,
	}
	if err := s.store.PutUser(r.Context(), user); err != nil {
		slog.ErrorContext(r.Context(), "Persist user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not persist session")
		return
	}

	slog.InfoContext(r.Context(), "User logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := sanitizeInput(req.Name)
	email := sanitizeInput(req.Email)
	if name == "" || email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	user := core.User{
		ID:    core.NewID(),
		Name:  name,
		Email: email,
	}
	if err := s.store.PutUser(r.Context(), user); err != nil {
		slog.ErrorContext(r.Context(), "Persist user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not persist session")
		return
	}

	slog.InfoContext(r.Context(), "User registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Clear user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, found, err := s.store.GetUser(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Read user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read session")
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// nameFromEmail derives a display name from the address's local part.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "User"
	}
	return local
}
