package handler

import (
	"time"

	"github.com/msomdec/course-api/internal/domain"
)

// UserDTO is the JSON representation of the authenticated user.
type UserDTO struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    u.UpdatedAt.Format(time.RFC3339),
	}
}

// OwnerDTO is the user embedded in a course. It never carries the
// password or audit timestamps.
type OwnerDTO struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// CourseDTO is the JSON representation of a course with its owner.
type CourseDTO struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   *string   `json:"estimatedTime"`
	MaterialsNeeded *string   `json:"materialsNeeded"`
	UserID          int64     `json:"userId"`
	Owner           *OwnerDTO `json:"Owner"`
}

func toCourseDTO(c *domain.Course) CourseDTO {
	dto := CourseDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
	if c.Owner != nil {
		dto.Owner = &OwnerDTO{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		}
	}
	return dto
}

func toCourseDTOs(courses []domain.Course) []CourseDTO {
	dtos := make([]CourseDTO, len(courses))
	for i := range courses {
		dtos[i] = toCourseDTO(&courses[i])
	}
	return dtos
}
