package content

import (
	"sort"
)

// SortPosts orders posts by publication date descending. Posts sharing a date
// are ordered by slug ascending so the result is stable across builds and
// worker counts.
func SortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		left, right := posts[i], posts[j]
		if left.Date.Equal(right.Date) {
			return left.Slug < right.Slug
		}
		return left.Date.After(right.Date)
	})
}

// FilterDrafts returns the posts eligible for the build target. Draft posts
// are excluded from published builds and only pass through when includeDrafts
// is set.
func FilterDrafts(posts []*Post, includeDrafts bool) []*Post {
	if includeDrafts {
		return append([]*Post(nil), posts...)
	}
	out := make([]*Post, 0, len(posts))
	for _, post := range posts {
		if post == nil || post.Draft {
			continue
		}
		out = append(out, post)
	}
	return out
}

// DetectCollision scans posts for duplicate slugs. The first collision found
// is returned as a SlugCollisionError naming every offending source file;
// a nil return means slugs are unique across the set.
func DetectCollision(posts []*Post) error {
	bySlug := make(map[string][]string, len(posts))
	for _, post := range posts {
		if post == nil {
			continue
		}
		bySlug[post.Slug] = append(bySlug[post.Slug], post.SourcePath)
	}

	slugs := make([]string, 0, len(bySlug))
	for slug := range bySlug {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		if paths := bySlug[slug]; len(paths) > 1 {
			return &SlugCollisionError{Slug: slug, Paths: paths}
		}
	}
	return nil
}
