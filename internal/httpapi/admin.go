package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripmates/userd/internal/service"
	"github.com/tripmates/userd/pkg/httpx"
	"github.com/tripmates/userd/pkg/slogx"
)

type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleListUsers returns every user record, newest first, hashes redacted.
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.AdminService.ListUsers(ctx)
	if err != nil {
		log.Error("user listing failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	records := make([]userRecord, len(users))
	for i, u := range users {
		records[i] = newUserRecord(u)
	}

	httpx.WriteResult(w, http.StatusOK, records)
}

type statusRequest struct {
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// HandleUpdateStatus sets role and active on the target user.
func (h *AdminHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("userId")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.AdminService.UpdateStatus(ctx, userID, req.Role, req.Active); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "User does not exist!")
			return
		}
		log.Error("status update failed", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	httpx.WriteResult(w, http.StatusOK, map[string]string{"id": userID})
}
