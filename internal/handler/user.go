package handler

import (
	"net/http"

	"github.com/msomdec/course-api/internal/service"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	auth *service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// HandleMe returns the authenticated user.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeUnauthenticated(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": toUserDTO(user)})
}

// HandleCreate registers a new account.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if _, err := h.auth.Register(r.Context(), in); err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
