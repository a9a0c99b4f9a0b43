package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/course-api/internal/domain"
)

const (
	msgAccessDenied   = "Access Denied"
	msgInvalidBody    = "Invalid request body."
	msgDuplicateEmail = "An account with that email address already exists."
	msgCourseNotFound = "Course not found"
	msgNotOwner       = "Only the owner of this course may change it."
	msgGeneric        = "An unexpected error occurred. Please try again."
)

// writeServiceError is the single place service errors become HTTP
// responses. notFound is the message used for domain.ErrNotFound.
//
// Not-found is answered with 400 rather than 404, matching the API's
// published contract. Persistence failures are logged and answered with a
// generic 400 so no internal detail reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string][]string{"errors": verr.Messages})
	case errors.Is(err, domain.ErrUnauthenticated):
		writeUnauthenticated(w)
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, msgDuplicateEmail)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusBadRequest, notFound)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, msgNotOwner)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusBadRequest, msgGeneric)
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="courses"`)
	writeMessage(w, http.StatusUnauthorized, msgAccessDenied)
}
