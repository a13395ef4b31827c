package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrincipal_RootHasUniversalPermission(t *testing.T) {
	p := NewPrincipal(uuid.New(), "root@example.com", "Root", []string{"ROOT"})
	assert.True(t, p.Has(DeleteSpaceAny))
	assert.True(t, p.Has(CreateMemoryOwn))
}

func TestPrincipal_UserHasOnlyOwnFamily(t *testing.T) {
	p := NewPrincipal(uuid.New(), "u@example.com", "U", []string{"USER"})
	assert.True(t, p.Has(CreateSpaceOwn))
	assert.False(t, p.Has(CreateSpaceAny))
	assert.True(t, p.Has(DisplayUserOwn))
	assert.False(t, p.Has(DisplayUserAny))
}

func TestPrincipal_IsSelf(t *testing.T) {
	id := uuid.New()
	p := NewPrincipal(id, "u@example.com", "U", []string{"USER"})
	assert.True(t, p.IsSelf(id))
	assert.False(t, p.IsSelf(uuid.New()))
}

func TestPermissionsForRole_Unknown(t *testing.T) {
	assert.Nil(t, PermissionsForRole("BOGUS"))
}
