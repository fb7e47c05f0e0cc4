package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUID_Deterministic(t *testing.T) {
	first := UUID("some-key")
	second := UUID("some-key")
	if first != second {
		t.Fatalf("same key should yield the same UUID: %s vs %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("non-empty key should not map to the nil UUID")
	}
}

func TestUUID_EmptyKey(t *testing.T) {
	if UUID("   ") != uuid.Nil {
		t.Fatal("blank keys should map to the nil UUID")
	}
}

func TestPostUUID_NormalizesSlug(t *testing.T) {
	if PostUUID("Hello-World") != PostUUID("  hello-world  ") {
		t.Fatal("post IDs should ignore case and padding")
	}
	if PostUUID("hello-world") == PostUUID("other-post") {
		t.Fatal("different slugs should yield different IDs")
	}
}

func TestDomainsDoNotCollide(t *testing.T) {
	if PostUUID("x") == ThemeUUID("x") {
		t.Fatal("post and theme keyspaces must not collide")
	}
	if PostUUID("x") == BuildUUID("x") {
		t.Fatal("post and build keyspaces must not collide")
	}
}
