package bootstrap_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goodmem-ai/goodmem/internal/bootstrap"
	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
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

func TestInitializeSystem_FirstCallCreatesRoot(t *testing.T) {
	gdb := newTestDB(t)
	svc := bootstrap.New(gdb)

	result, err := svc.InitializeSystem(context.Background())
	require.NoError(t, err)

	assert.False(t, result.AlreadyInitialized)
	assert.NotEmpty(t, result.RootAPIKey)
	assert.NotEqual(t, result.UserID.String(), "00000000-0000-0000-0000-000000000000")

	var binding model.UserRole
	require.NoError(t, gdb.Where("user_id = ? AND role_name = ?", result.UserID, model.RoleRoot).First(&binding).Error)
}

func TestInitializeSystem_SecondCallObservesAlreadyInitialized(t *testing.T) {
	gdb := newTestDB(t)
	svc := bootstrap.New(gdb)

	first, err := svc.InitializeSystem(context.Background())
	require.NoError(t, err)
	require.False(t, first.AlreadyInitialized)

	second, err := svc.InitializeSystem(context.Background())
	require.NoError(t, err)
	assert.True(t, second.AlreadyInitialized)
	assert.Empty(t, second.RootAPIKey)
}

// TestInitializeSystem_ConcurrentCallersRaceToExactlyOneWinner exercises
// the partial-unique-index invariant: of N concurrent callers, exactly
// one observes AlreadyInitialized = false.
func TestInitializeSystem_ConcurrentCallersRaceToExactlyOneWinner(t *testing.T) {
	gdb := newTestDB(t)
	svc := bootstrap.New(gdb)

	const callers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.InitializeSystem(context.Background())
			require.NoError(t, err)
			if !result.AlreadyInitialized {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}
