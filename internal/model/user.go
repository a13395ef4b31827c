package model

import "github.com/google/uuid"

// User is the top-level identity entity (§3). At most one row may carry the
// ROOT role binding — enforced by a partial unique index on UserRole, not by
// application code, so that concurrent bootstrap attempts cannot both win.
type User struct {
	base
	Username    *string `gorm:"uniqueIndex"`
	Email       string  `gorm:"uniqueIndex;not null"`
	DisplayName string  `gorm:"not null"`
}

// TableName pins the table name so a future rename of the Go type does not
// silently migrate the schema.
func (User) TableName() string { return "users" }

// RoleName enumerates the three roles defined in §4.5.
type RoleName string

const (
	RoleRoot  RoleName = "ROOT"
	RoleAdmin RoleName = "ADMIN"
	RoleUser  RoleName = "USER"
)

// UserRole is a single role binding. (user_id, role_name) is unique; ROOT is
// additionally constrained to at most one row total via a partial index
// created in the migrations (internal/db/migrations).
type UserRole struct {
	base
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role_unique"`
	RoleName RoleName  `gorm:"type:text;not null;uniqueIndex:idx_user_role_unique"`
}

func (UserRole) TableName() string { return "user_roles" }
