package sqldb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/msomdec/course-api/internal/domain"
)

type userModel struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	FirstName    string    `bun:"first_name,notnull"`
	LastName     string    `bun:"last_name,notnull"`
	EmailAddress string    `bun:"email_address,notnull,unique"`
	Password     string    `bun:"password,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

type courseModel struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID              int64     `bun:"id,pk,autoincrement"`
	UserID          int64     `bun:"user_id,notnull"`
	Title           string    `bun:"title,notnull"`
	Description     string    `bun:"description,notnull"`
	EstimatedTime   *string   `bun:"estimated_time"`
	MaterialsNeeded *string   `bun:"materials_needed"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`

	Owner *userModel `bun:"rel:belongs-to,join:user_id=id"`
}

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		EmailAddress: m.EmailAddress,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// toOwner projects the joined user without credentials or audit timestamps.
func (m *userModel) toOwner() *domain.User {
	return &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		EmailAddress: m.EmailAddress,
	}
}

func (m *courseModel) toDomain() domain.Course {
	c := domain.Course{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Description:     m.Description,
		EstimatedTime:   m.EstimatedTime,
		MaterialsNeeded: m.MaterialsNeeded,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Owner != nil {
		c.Owner = m.Owner.toOwner()
	}
	return c
}

func courseModelFrom(c *domain.Course) *courseModel {
	return &courseModel{
		ID:              c.ID,
		UserID:          c.UserID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// now returns the current time at the precision every supported dialect
// stores, so values read back compare equal to the ones written.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
