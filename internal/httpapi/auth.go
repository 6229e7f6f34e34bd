package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripmates/userd/internal/service"
	"github.com/tripmates/userd/pkg/httpx"
	"github.com/tripmates/userd/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new account and returns it with a session token.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.AuthService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			httpx.WriteError(w, http.StatusBadRequest, "Password must be 6 characters or more")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusBadRequest, "User already exists!")
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteResult(w, http.StatusCreated, newSessionResult(user, token))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and returns the user with a session token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "User does not exist!")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid credentials")
		case errors.Is(err, service.ErrAccountSuspended):
			httpx.WriteError(w, http.StatusBadRequest, "This account has been suspended! Try to contact the admin")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteResult(w, http.StatusOK, newSessionResult(user, token))
}
