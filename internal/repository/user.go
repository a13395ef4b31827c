package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Users is the sole reader/writer of User and UserRole rows (§4.3).
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users { return &Users{db: db} }

func (u *Users) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var row model.User
	err := u.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get user by id: %w", translate(err))
	}
	return &row, nil
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var row model.User
	err := u.db.WithContext(ctx).First(&row, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get user by email: %w", translate(err))
	}
	return &row, nil
}

// Save upserts a user by primary key (§4.3 "Save semantics").
func (u *Users) Save(ctx context.Context, row *model.User) error {
	err := u.db.WithContext(ctx).Save(row).Error
	if err != nil {
		return fmt.Errorf("repository: save user: %w", translate(err))
	}
	return nil
}

// RolesForUser returns every role name bound to userID.
func (u *Users) RolesForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var bindings []model.UserRole
	if err := u.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bindings).Error; err != nil {
		return nil, fmt.Errorf("repository: list roles for user: %w", err)
	}
	roles := make([]string, len(bindings))
	for i, b := range bindings {
		roles[i] = string(b.RoleName)
	}
	return roles, nil
}

// BindRole creates a role binding for a user, inside the provided
// transaction when tx is non-nil. Bootstrap does not call it; it creates
// the ROOT binding in its own transaction.
func (u *Users) BindRole(ctx context.Context, tx *gorm.DB, userID uuid.UUID, role model.RoleName) error {
	conn := u.db
	if tx != nil {
		conn = tx
	}
	binding := model.UserRole{UserID: userID, RoleName: role}
	if err := conn.WithContext(ctx).Create(&binding).Error; err != nil {
		return translate(err)
	}
	return nil
}

// WithTransaction runs fn inside a single database transaction, matching
// the cascade-delete and bootstrap patterns of §4.3/§4.8.
func (u *Users) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

// DB exposes the underlying handle for repositories that need to compose a
// shared transaction across entities (e.g. bootstrap, cascade deletes).
func (u *Users) DB() *gorm.DB { return u.db }
