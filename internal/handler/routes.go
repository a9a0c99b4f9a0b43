package handler

import (
	"net/http"

	"github.com/msomdec/course-api/internal/domain"
	"github.com/msomdec/course-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, courses *service.CourseService, db domain.Database) {
	users := NewUserHandler(auth)
	courseHandler := NewCourseHandler(courses)

	mux.HandleFunc("GET /{$}", HandleHome)
	mux.HandleFunc("GET /healthz", HandleHealthz(db))

	mux.Handle("GET /users", RequireAuth(auth, http.HandlerFunc(users.HandleMe)))
	mux.HandleFunc("POST /users", users.HandleCreate)

	mux.HandleFunc("GET /courses", courseHandler.HandleList)
	mux.HandleFunc("GET /courses/{id}", courseHandler.HandleGet)
	mux.Handle("POST /courses", RequireAuth(auth, http.HandlerFunc(courseHandler.HandleCreate)))
	mux.Handle("PUT /courses/{id}", RequireAuth(auth, http.HandlerFunc(courseHandler.HandleUpdate)))
	mux.Handle("DELETE /courses/{id}", RequireAuth(auth, http.HandlerFunc(courseHandler.HandleDelete)))

	mux.HandleFunc("/", HandleNotFound)
}
