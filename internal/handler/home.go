package handler

import (
	"net/http"
)

// HandleHome answers the API root, which is also where a new user's
// Location header points.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Welcome to the Course API!")
}

// HandleNotFound answers any request no other route matched.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Route Not Found")
}
