package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PostUUID keys a post by its slug so IDs survive file moves and rebuilds.
func PostUUID(slug string) uuid.UUID {
	return UUID("go-sitegen:post:" + strings.ToLower(strings.TrimSpace(slug)))
}

// BuildUUID keys a build run by the combined checksum of its inputs, giving
// identical inputs the same build identifier.
func BuildUUID(inputDigest string) uuid.UUID {
	return UUID("go-sitegen:build:" + strings.TrimSpace(inputDigest))
}

// ThemeUUID keys a theme by its on-disk path.
func ThemeUUID(themePath string) uuid.UUID {
	return UUID("go-sitegen:theme:" + strings.TrimSpace(themePath))
}
