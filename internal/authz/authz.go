// Package authz implements the permission model of §4.5: an enumerated
// permission set per role, and the Principal value that carries a caller's
// resolved identity and permissions through a request.
package authz

import "github.com/google/uuid"

// Permission is one entry of the enumerated permission set (§4.5).
type Permission string

const (
	DisplayUserOwn Permission = "DISPLAY_USER_OWN"
	DisplayUserAny Permission = "DISPLAY_USER_ANY"

	CreateSpaceOwn Permission = "CREATE_SPACE_OWN"
	CreateSpaceAny Permission = "CREATE_SPACE_ANY"
	DisplaySpaceOwn Permission = "DISPLAY_SPACE_OWN"
	DisplaySpaceAny Permission = "DISPLAY_SPACE_ANY"
	UpdateSpaceOwn Permission = "UPDATE_SPACE_OWN"
	UpdateSpaceAny Permission = "UPDATE_SPACE_ANY"
	DeleteSpaceOwn Permission = "DELETE_SPACE_OWN"
	DeleteSpaceAny Permission = "DELETE_SPACE_ANY"

	CreateEmbedderOwn Permission = "CREATE_EMBEDDER_OWN"
	CreateEmbedderAny Permission = "CREATE_EMBEDDER_ANY"
	DisplayEmbedderOwn Permission = "DISPLAY_EMBEDDER_OWN"
	DisplayEmbedderAny Permission = "DISPLAY_EMBEDDER_ANY"
	UpdateEmbedderOwn Permission = "UPDATE_EMBEDDER_OWN"
	UpdateEmbedderAny Permission = "UPDATE_EMBEDDER_ANY"
	DeleteEmbedderOwn Permission = "DELETE_EMBEDDER_OWN"
	DeleteEmbedderAny Permission = "DELETE_EMBEDDER_ANY"

	CreateApiKeyOwn Permission = "CREATE_APIKEY_OWN"
	CreateApiKeyAny Permission = "CREATE_APIKEY_ANY"
	DisplayApiKeyOwn Permission = "DISPLAY_APIKEY_OWN"
	DisplayApiKeyAny Permission = "DISPLAY_APIKEY_ANY"
	UpdateApiKeyOwn Permission = "UPDATE_APIKEY_OWN"
	UpdateApiKeyAny Permission = "UPDATE_APIKEY_ANY"
	DeleteApiKeyOwn Permission = "DELETE_APIKEY_OWN"
	DeleteApiKeyAny Permission = "DELETE_APIKEY_ANY"

	CreateMemoryOwn Permission = "CREATE_MEMORY_OWN"
	CreateMemoryAny Permission = "CREATE_MEMORY_ANY"
	DisplayMemoryOwn Permission = "DISPLAY_MEMORY_OWN"
	DisplayMemoryAny Permission = "DISPLAY_MEMORY_ANY"
	UpdateMemoryOwn Permission = "UPDATE_MEMORY_OWN"
	UpdateMemoryAny Permission = "UPDATE_MEMORY_ANY"
	DeleteMemoryOwn Permission = "DELETE_MEMORY_OWN"
	DeleteMemoryAny Permission = "DELETE_MEMORY_ANY"

	// universal is a sentinel carried only by ROOT and ADMIN (§4.5: "the two
	// unrestricted roles ... confer the universal permission"). Has() treats
	// it as matching every Permission.
	universal Permission = "*"
)

// ownPermissions is the full *_OWN family granted to the USER role, plus
// DISPLAY_USER_OWN (§4.5).
var ownPermissions = []Permission{
	DisplayUserOwn,
	CreateSpaceOwn, DisplaySpaceOwn, UpdateSpaceOwn, DeleteSpaceOwn,
	CreateEmbedderOwn, DisplayEmbedderOwn, UpdateEmbedderOwn, DeleteEmbedderOwn,
	CreateApiKeyOwn, DisplayApiKeyOwn, UpdateApiKeyOwn, DeleteApiKeyOwn,
	CreateMemoryOwn, DisplayMemoryOwn, UpdateMemoryOwn, DeleteMemoryOwn,
}

// PermissionsForRole returns the permission set conferred by a role name.
// Unknown role names confer no permissions.
func PermissionsForRole(role string) []Permission {
	switch role {
	case "ROOT", "ADMIN":
		return []Permission{universal}
	case "USER":
		return ownPermissions
	default:
		return nil
	}
}

// Principal is the single concrete identity type attached to every
// authenticated request context. GoodMem has no polymorphic user hierarchy —
// every caller, regardless of role, is represented the same way, with the
// role distinction folded entirely into the Permissions set.
type Principal struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
	Permissions map[Permission]struct{}
}

// NewPrincipal assembles a Principal from a user's resolved role bindings.
func NewPrincipal(userID uuid.UUID, email, displayName string, roles []string) Principal {
	perms := make(map[Permission]struct{})
	for _, role := range roles {
		for _, p := range PermissionsForRole(role) {
			perms[p] = struct{}{}
		}
	}
	return Principal{UserID: userID, Email: email, DisplayName: displayName, Permissions: perms}
}

// Has reports whether the principal holds perm, either directly or via the
// universal permission conferred by ROOT/ADMIN.
func (p Principal) Has(perm Permission) bool {
	if _, ok := p.Permissions[universal]; ok {
		return true
	}
	_, ok := p.Permissions[perm]
	return ok
}

// IsSelf reports whether target is the principal's own user id — the
// "*_OWN" boundary check used throughout §4.6.
func (p Principal) IsSelf(target uuid.UUID) bool {
	return p.UserID == target
}
