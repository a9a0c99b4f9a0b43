package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/msomdec/course-api/internal/service"
)

// CourseHandler serves the /courses endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// HandleList returns every course with its owner.
func (h *CourseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, msgCourseNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCourseDTOs(courses))
}

// HandleGet returns one course with its owner.
func (h *CourseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	course, err := h.courses.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, msgCourseNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCourseDTO(course))
}

// HandleCreate stores a new course and points Location at it.
func (h *CourseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.CreateCourseInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	course, err := h.courses.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, msgCourseNotFound)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/courses/%d", course.ID))
	w.WriteHeader(http.StatusCreated)
}

// HandleUpdate applies a partial update. Only the owner may update.
func (h *CourseHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	var in service.UpdateCourseInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.courses.Update(r.Context(), UserFromContext(r.Context()), id, in); err != nil {
		writeServiceError(w, r, err, msgCourseNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a course. Only the owner may delete.
func (h *CourseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	if err := h.courses.Delete(r.Context(), UserFromContext(r.Context()), id); err != nil {
		writeServiceError(w, r, err, msgCourseNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// courseID parses the {id} path value. A malformed id can never match a
// course, so it is answered like a missing one.
func courseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, msgCourseNotFound)
		return 0, false
	}
	return id, true
}
