package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/goodmem-ai/goodmem/internal/model"
	"github.com/goodmem-ai/goodmem/internal/repository"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB spins up a disposable Postgres+pgvector container and applies
// the schema directly with AutoMigrate (the SQL migrations under
// internal/db/migrations are not run here; this test only needs the tables
// to exist).
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

	require.NoError(t, gdb.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error)
	require.NoError(t, gdb.AutoMigrate(&model.User{}, &model.UserRole{}, &model.ApiKey{}, &model.Embedder{}, &model.Space{}, &model.Memory{}))
	// MemoryChunk's embedding_vector column gets AutoMigrate's generic
	// "vector" type, which matches the migration: no fixed dimension and no
	// ANN index.
	require.NoError(t, gdb.AutoMigrate(&model.MemoryChunk{}))

	return gdb
}

func TestSpaces_QueryVisibilityAndLabelSelectors(t *testing.T) {
	gdb := newTestDB(t)

	owner := model.User{Email: "owner@example.com", DisplayName: "Owner"}
	require.NoError(t, gdb.Create(&owner).Error)
	other := model.User{Email: "other@example.com", DisplayName: "Other"}
	require.NoError(t, gdb.Create(&other).Error)

	embedder := model.Embedder{
		DisplayName:     "embedder-1",
		ProviderType:    model.ProviderOpenAI,
		EndpointURL:     "https://example.com",
		ModelIdentifier: "text-embedding-3-small",
		Dimensionality:  1536,
		OwnerID:         owner.ID,
		CreatedBy:       owner.ID,
		UpdatedBy:       owner.ID,
	}
	require.NoError(t, gdb.Create(&embedder).Error)

	spaces := repository.NewSpaces(gdb)

	mine := model.Space{Name: "mine", EmbedderID: embedder.ID, OwnerID: owner.ID, CreatedBy: owner.ID, UpdatedBy: owner.ID, Labels: model.Labels{"env": "prod"}}
	require.NoError(t, spaces.Save(context.Background(), &mine))

	public := model.Space{Name: "public-one", EmbedderID: embedder.ID, OwnerID: other.ID, CreatedBy: other.ID, UpdatedBy: other.ID, PublicRead: true}
	require.NoError(t, spaces.Save(context.Background(), &public))

	private := model.Space{Name: "private-one", EmbedderID: embedder.ID, OwnerID: other.ID, CreatedBy: other.ID, UpdatedBy: other.ID}
	require.NoError(t, spaces.Save(context.Background(), &private))

	rows, total, err := spaces.Query(context.Background(), repository.SpaceQuery{
		SortBy:        "created_at",
		SortAscending: true,
		PageSize:      50,
		IncludePublic: true,
		RequestorID:   owner.ID,
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	names := []string{rows[0].Name, rows[1].Name}
	require.Contains(t, names, "mine")
	require.Contains(t, names, "public-one")
	require.NotContains(t, names, "private-one")

	rows, total, err = spaces.Query(context.Background(), repository.SpaceQuery{
		LabelSelectors: map[string]string{"env": "prod"},
		SortBy:         "created_at",
		SortAscending:  true,
		PageSize:       50,
		IncludePublic:  true,
		RequestorID:    owner.ID,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "mine", rows[0].Name)
}

func TestSpaces_DeleteCascadesToMemoriesAndChunks(t *testing.T) {
	gdb := newTestDB(t)

	owner := model.User{Email: "cascade@example.com", DisplayName: "Owner"}
	require.NoError(t, gdb.Create(&owner).Error)

	embedder := model.Embedder{
		DisplayName: "embedder-2", ProviderType: model.ProviderTEI, EndpointURL: "https://example.com",
		ModelIdentifier: "bge-small", Dimensionality: 384, OwnerID: owner.ID, CreatedBy: owner.ID, UpdatedBy: owner.ID,
	}
	require.NoError(t, gdb.Create(&embedder).Error)

	spaces := repository.NewSpaces(gdb)
	memories := repository.NewMemories(gdb)
	chunks := repository.NewMemoryChunks(gdb)

	space := model.Space{Name: "to-delete", EmbedderID: embedder.ID, OwnerID: owner.ID, CreatedBy: owner.ID, UpdatedBy: owner.ID}
	require.NoError(t, spaces.Save(context.Background(), &space))

	memory := model.Memory{SpaceID: space.ID, OriginalContentRef: "s3://bucket/key", ContentType: "text/plain", CreatedBy: owner.ID, UpdatedBy: owner.ID}
	require.NoError(t, memories.Save(context.Background(), &memory))

	chunk := model.MemoryChunk{MemoryID: memory.ID, ChunkSequenceNumber: 0, ChunkText: "hello", StartOffset: 0, EndOffset: 5}
	require.NoError(t, chunks.Save(context.Background(), &chunk))

	require.NoError(t, spaces.Delete(context.Background(), space.ID))

	_, err := memories.GetByID(context.Background(), memory.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	_, err = chunks.GetByID(context.Background(), chunk.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryChunks_NearestChunks(t *testing.T) {
	gdb := newTestDB(t)

	owner := model.User{Email: "ann@example.com", DisplayName: "Owner"}
	require.NoError(t, gdb.Create(&owner).Error)

	embedder := model.Embedder{
		DisplayName: "embedder-3", ProviderType: model.ProviderVLLM, EndpointURL: "https://example.com",
		ModelIdentifier: "e5-small", Dimensionality: 3, OwnerID: owner.ID, CreatedBy: owner.ID, UpdatedBy: owner.ID,
	}
	require.NoError(t, gdb.Create(&embedder).Error)

	spaces := repository.NewSpaces(gdb)
	memories := repository.NewMemories(gdb)
	chunks := repository.NewMemoryChunks(gdb)

	space := model.Space{Name: "ann-space", EmbedderID: embedder.ID, OwnerID: owner.ID, CreatedBy: owner.ID, UpdatedBy: owner.ID}
	require.NoError(t, spaces.Save(context.Background(), &space))
	memory := model.Memory{SpaceID: space.ID, OriginalContentRef: "ref", ContentType: "text/plain", CreatedBy: owner.ID, UpdatedBy: owner.ID}
	require.NoError(t, memories.Save(context.Background(), &memory))

	near := model.MemoryChunk{MemoryID: memory.ID, ChunkSequenceNumber: 0, ChunkText: "near", VectorStatus: model.VectorGenerated, EmbeddingVector: model.NewEmbeddingVector([]float32{1, 0, 0})}
	far := model.MemoryChunk{MemoryID: memory.ID, ChunkSequenceNumber: 1, ChunkText: "far", VectorStatus: model.VectorGenerated, EmbeddingVector: model.NewEmbeddingVector([]float32{0, 0, 1})}
	pending := model.MemoryChunk{MemoryID: memory.ID, ChunkSequenceNumber: 2, ChunkText: "pending", VectorStatus: model.VectorPending}
	require.NoError(t, chunks.Save(context.Background(), &near))
	require.NoError(t, chunks.Save(context.Background(), &far))
	require.NoError(t, chunks.Save(context.Background(), &pending))

	results, err := chunks.NearestChunks(context.Background(), space.ID, []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, near.ID, results[0].ID)
	require.Equal(t, far.ID, results[1].ID)
}
