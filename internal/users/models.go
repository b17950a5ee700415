package users

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName  string    `json:"first_name" gorm:"not null"`
	LastName   string    `json:"last_name" gorm:"not null"`
	Password   string    `json:"-" gorm:"not null"` // hide in json
	Role       Role      `json:"role" gorm:"not null;default:'USER'"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	IsApproved bool      `json:"is_approved" gorm:"not null;default:false"` // organizer vetting flag
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CanManageVenues reports whether the user may create or edit venue content.
func (u *User) CanManageVenues() bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleOrganizer:
		return u.IsApproved
	default:
		return false
	}
}
