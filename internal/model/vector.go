package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingVector is a nullable wrapper around pgvector.Vector. A nil
// Vector field means "no embedding yet" (VectorStatus PENDING or FAILED);
// spec §4.3 requires exactly this — a null vector is only permitted when
// vector_status != GENERATED, which is enforced at the service layer.
//
// The wire/storage form is pgvector's own textual encoding, "[v1,v2,...]",
// with no surrounding quotes (§4.3 "Vector formatting").
type EmbeddingVector struct {
	Vector *pgvector.Vector
}

// NewEmbeddingVector wraps a float32 slice as a generated embedding.
func NewEmbeddingVector(values []float32) EmbeddingVector {
	v := pgvector.NewVector(values)
	return EmbeddingVector{Vector: &v}
}

// Slice returns the underlying float32 values, or nil if unset.
func (e EmbeddingVector) Slice() []float32 {
	if e.Vector == nil {
		return nil
	}
	return e.Vector.Slice()
}

// Value implements driver.Valuer.
func (e EmbeddingVector) Value() (driver.Value, error) {
	if e.Vector == nil {
		return nil, nil
	}
	return e.Vector.Value()
}

// Scan implements sql.Scanner.
func (e *EmbeddingVector) Scan(value any) error {
	if value == nil {
		e.Vector = nil
		return nil
	}
	var v pgvector.Vector
	if err := v.Scan(value); err != nil {
		return fmt.Errorf("model: scanning embedding vector: %w", err)
	}
	e.Vector = &v
	return nil
}

// GormDataType tells GORM this type maps to a pgvector "vector" column.
// The column has no fixed dimension: the migration DDL
// (internal/db/migrations) declares it as plain "vector", so the column
// type does not enforce Embedder.Dimensionality. The server applies those
// migrations; the repository integration tests create the column with
// AutoMigrate instead.
func (EmbeddingVector) GormDataType() string { return "vector" }

// TextLiteral renders the pgvector textual form used for building raw
// L2-distance queries (the "<->" operator) in internal/repository.
func TextLiteral(values []float32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
