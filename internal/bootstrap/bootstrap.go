// Package bootstrap implements the single unauthenticated operation that
// creates the system's root user (§4.8).
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodmem-ai/goodmem/internal/keycodec"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for a unique constraint
// violation — used here to distinguish "another caller won the root-
// creation race" from a genuine database failure.
const uniqueViolationCode = "23505"

const (
	rootEmail       = "root@goodmem.ai"
	rootDisplayName = "System Root User"
	rootUsername    = "root"
)

// Result is the outcome of InitializeSystem (§4.8).
type Result struct {
	AlreadyInitialized bool
	RootAPIKey         string // empty when AlreadyInitialized
	UserID             uuid.UUID
	Message            string
}

// Service runs the bootstrap operation against a *gorm.DB. It holds no
// connection-level state of its own and is safe to call concurrently — the
// single-ROOT invariant is enforced by the database's partial unique index
// on user_roles(role_name) WHERE role_name = 'ROOT', not by an in-process
// lock (§4.8 item 3).
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

// InitializeSystem implements §4.8. Concurrent callers racing to create the
// root user will have exactly one succeed; every loser observes
// AlreadyInitialized = true: its failed insert is rolled back to a
// savepoint, so its transaction still commits cleanly.
func (s *Service) InitializeSystem(ctx context.Context) (Result, error) {
	var result Result

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.UserRole
		err := tx.Where("role_name = ?", model.RoleRoot).First(&existing).Error
		switch {
		case err == nil:
			result = Result{AlreadyInitialized: true, Message: "System is already initialized"}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// proceed to create
		default:
			return fmt.Errorf("bootstrap: checking for existing root: %w", err)
		}

		username := rootUsername
		user := model.User{
			Username:    &username,
			Email:       rootEmail,
			DisplayName: rootDisplayName,
		}
		// Postgres aborts a transaction after a failed statement; rolling
		// back to this savepoint lets a lost race still commit.
		if err := tx.SavePoint("root_create").Error; err != nil {
			return fmt.Errorf("bootstrap: creating savepoint: %w", err)
		}
		if err := tx.Create(&user).Error; err != nil {
			tx.RollbackTo("root_create")
			return s.handleRootCreateConflict(&result, err)
		}

		binding := model.UserRole{UserID: user.ID, RoleName: model.RoleRoot}
		if err := tx.Create(&binding).Error; err != nil {
			tx.RollbackTo("root_create")
			return s.handleRootCreateConflict(&result, err)
		}

		generated, err := keycodec.Generate()
		if err != nil {
			return fmt.Errorf("bootstrap: generating root api key: %w", err)
		}

		key := model.ApiKey{
			UserID:            user.ID,
			KeyPrefix:         generated.DisplayPrefix,
			HashedKeyMaterial: generated.StorageHash[:],
			Status:            model.ApiKeyStatusActive,
			Labels:            model.Labels{},
			CreatedBy:         user.ID,
			UpdatedBy:         user.ID,
		}
		if err := tx.Create(&key).Error; err != nil {
			return fmt.Errorf("bootstrap: storing root api key: %w", err)
		}

		result = Result{
			AlreadyInitialized: false,
			RootAPIKey:         generated.RawKey,
			UserID:             user.ID,
			Message:            "System initialized",
		}
		return nil
	})

	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// handleRootCreateConflict treats a unique-constraint violation on the
// partial root index (or the user's fixed email) as the "lost the race"
// outcome; any other error is propagated as a genuine failure.
func (s *Service) handleRootCreateConflict(result *Result, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		*result = Result{AlreadyInitialized: true, Message: "System is already initialized"}
		return nil
	}
	return fmt.Errorf("bootstrap: creating root user: %w", err)
}
