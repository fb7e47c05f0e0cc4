package content

import (
	"errors"
	"testing"
	"time"
)

func mkPost(slug string, date time.Time, draft bool) *Post {
	return &Post{
		Slug:       slug,
		Title:      slug,
		Date:       date,
		Draft:      draft,
		SourcePath: slug + ".md",
	}
}

func TestSortPosts_DateDescending(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	posts := []*Post{
		mkPost("oldest", jan, false),
		mkPost("newest", mar, false),
		mkPost("middle", feb, false),
	}

	SortPosts(posts)

	got := []string{posts[0].Slug, posts[1].Slug, posts[2].Slug}
	want := []string{"newest", "middle", "oldest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order at %d: got %v want %v", i, got, want)
		}
	}
}

func TestSortPosts_TieBreaksOnSlug(t *testing.T) {
	date := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	posts := []*Post{
		mkPost("zebra", date, false),
		mkPost("alpha", date, false),
		mkPost("mango", date, false),
	}

	SortPosts(posts)

	if posts[0].Slug != "alpha" || posts[1].Slug != "mango" || posts[2].Slug != "zebra" {
		t.Fatalf("expected slug ascending tie-break, got %s %s %s", posts[0].Slug, posts[1].Slug, posts[2].Slug)
	}
}

func TestFilterDrafts_ExcludesByDefault(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*Post{
		mkPost("live", date, false),
		mkPost("wip", date, true),
	}

	filtered := FilterDrafts(posts, false)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 post, got %d", len(filtered))
	}
	if filtered[0].Slug != "live" {
		t.Fatalf("expected draft to be excluded, got %s", filtered[0].Slug)
	}
}

func TestFilterDrafts_IncludeDraftsPassesEverything(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*Post{
		mkPost("live", date, false),
		mkPost("wip", date, true),
	}

	filtered := FilterDrafts(posts, true)
	if len(filtered) != 2 {
		t.Fatalf("expected both posts, got %d", len(filtered))
	}
}

func TestFilterDrafts_CopiesInput(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*Post{mkPost("live", date, false)}

	filtered := FilterDrafts(posts, true)
	filtered[0] = nil
	if posts[0] == nil {
		t.Fatalf("FilterDrafts should not alias the input slice")
	}
}

func TestDetectCollision(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	unique := []*Post{
		mkPost("first", date, false),
		mkPost("second", date, false),
	}
	if err := DetectCollision(unique); err != nil {
		t.Fatalf("expected no collision, got %v", err)
	}

	a := mkPost("shared", date, false)
	a.SourcePath = "posts/a.md"
	b := mkPost("shared", date, false)
	b.SourcePath = "posts/b.md"

	err := DetectCollision([]*Post{a, b, mkPost("other", date, false)})
	if err == nil {
		t.Fatalf("expected a collision error")
	}

	var collision *SlugCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected SlugCollisionError, got %T", err)
	}
	if collision.Slug != "shared" {
		t.Fatalf("collision slug mismatch: %s", collision.Slug)
	}
	if len(collision.Paths) != 2 {
		t.Fatalf("expected both source paths, got %#v", collision.Paths)
	}
	if !errors.Is(err, ErrSlugConflict) {
		t.Fatalf("collision should unwrap to ErrSlugConflict")
	}
}
