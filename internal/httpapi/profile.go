package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripmates/userd/internal/service"
	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/pkg/httpx"
	"github.com/tripmates/userd/pkg/slogx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// profileRequest uses a pointer for photoURL so an omitted field can be told
// apart from an explicit empty string: omitted keeps the stored value.
type profileRequest struct {
	Name     string  `json:"name"`
	GroupTag string  `json:"grouptag"`
	PhotoURL *string `json:"photoURL"`
}

// ServeHTTP updates the authenticated user's profile and re-issues the
// session token with the refreshed claims.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.ProfileService.Update(ctx, userID, store.ProfileUpdate{
		Name:     req.Name,
		GroupTag: req.GroupTag,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "User does not exist!")
			return
		}
		log.Error("profile update failed", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	httpx.WriteResult(w, http.StatusOK, profileResult{
		Name:     user.Name,
		GroupTag: user.GroupTag,
		PhotoURL: user.PhotoURL,
		Token:    token,
	})
}
