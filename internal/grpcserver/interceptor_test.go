package grpcserver_test

import (
	"context"
	"testing"
	"time"

	"github.com/goodmem-ai/goodmem/internal/authz"
	"github.com/goodmem-ai/goodmem/internal/grpcserver"
	"github.com/goodmem-ai/goodmem/internal/keycodec"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed integration test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"pgvector/pgvector:pg16",
		postgres.WithDatabase("goodmem_test"),
		postgres.WithUsername("goodmem"),
		postgres.WithPassword("goodmem"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gdb, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&model.User{}, &model.UserRole{}, &model.ApiKey{}))
	return gdb
}

func TestResolver_Resolve_UnknownKeyIsUnauthenticated(t *testing.T) {
	gdb := newTestDB(t)
	resolver := grpcserver.NewResolver(repository.NewUsers(gdb), repository.NewApiKeys(gdb), zap.NewNop())

	_, err := resolver.Resolve(context.Background(), "gm_doesnotexist")
	assert.Error(t, err)
}

func TestResolver_Resolve_EmptyKeyIsUnauthenticated(t *testing.T) {
	gdb := newTestDB(t)
	resolver := grpcserver.NewResolver(repository.NewUsers(gdb), repository.NewApiKeys(gdb), zap.NewNop())

	_, err := resolver.Resolve(context.Background(), "")
	assert.Error(t, err)
}

func TestResolver_Resolve_ActiveKeyYieldsPrincipalWithOwnPermissions(t *testing.T) {
	gdb := newTestDB(t)
	users := repository.NewUsers(gdb)
	apiKeys := repository.NewApiKeys(gdb)
	resolver := grpcserver.NewResolver(users, apiKeys, zap.NewNop())

	user := model.User{Email: "u@example.com", DisplayName: "U"}
	require.NoError(t, users.Save(context.Background(), &user))
	require.NoError(t, users.BindRole(context.Background(), nil, user.ID, model.RoleUser))

	generated, err := keycodec.Generate()
	require.NoError(t, err)
	key := model.ApiKey{
		UserID:            user.ID,
		KeyPrefix:         generated.DisplayPrefix,
		HashedKeyMaterial: generated.StorageHash[:],
		Status:            model.ApiKeyStatusActive,
		Labels:            model.Labels{},
		CreatedBy:         user.ID,
		UpdatedBy:         user.ID,
	}
	require.NoError(t, apiKeys.Save(context.Background(), &key))

	principal, err := resolver.Resolve(context.Background(), generated.RawKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.True(t, principal.IsSelf(user.ID))
	assert.True(t, principal.Has(authz.DisplayUserOwn))
	assert.False(t, principal.Has(authz.DisplayUserAny))
}

func TestResolver_Resolve_InactiveKeyIsUnauthenticated(t *testing.T) {
	gdb := newTestDB(t)
	users := repository.NewUsers(gdb)
	apiKeys := repository.NewApiKeys(gdb)
	resolver := grpcserver.NewResolver(users, apiKeys, zap.NewNop())

	user := model.User{Email: "u2@example.com", DisplayName: "U2"}
	require.NoError(t, users.Save(context.Background(), &user))

	generated, err := keycodec.Generate()
	require.NoError(t, err)
	key := model.ApiKey{
		UserID:            user.ID,
		KeyPrefix:         generated.DisplayPrefix,
		HashedKeyMaterial: generated.StorageHash[:],
		Status:            model.ApiKeyStatusInactive,
		Labels:            model.Labels{},
		CreatedBy:         user.ID,
		UpdatedBy:         user.ID,
	}
	require.NoError(t, apiKeys.Save(context.Background(), &key))

	_, err = resolver.Resolve(context.Background(), generated.RawKey)
	assert.Error(t, err)
}
