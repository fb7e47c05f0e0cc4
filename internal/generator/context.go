package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/internal/identity"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// BuildContext carries the assembled source material for a single build run.
type BuildContext struct {
	BuildID        uuid.UUID
	Posts          []*content.Post
	DraftsExcluded int
	GeneratedAt    time.Time
	Options        BuildOptions
}

// loadContext loads every Markdown document, converts each into a post, and
// applies draft filtering, collision detection, and publication ordering.
// A slug collision aborts the build here, before anything touches the store.
func (s *service) loadContext(ctx context.Context, opts BuildOptions) (*BuildContext, error) {
	docs, err := s.deps.Markdown.LoadDirectory(ctx, ".", interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}

	posts := make([]*content.Post, 0, len(docs))
	for _, doc := range docs {
		post, err := content.FromDocument(doc)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	included := content.FilterDrafts(posts, opts.IncludeDrafts)
	excluded := len(posts) - len(included)

	// Collisions are checked on the set that will actually be published;
	// an excluded draft cannot shadow a live post.
	if err := content.DetectCollision(included); err != nil {
		return nil, err
	}

	content.SortPosts(included)

	return &BuildContext{
		BuildID:        identity.BuildUUID(buildInputDigest(included)),
		Posts:          included,
		DraftsExcluded: excluded,
		GeneratedAt:    s.now().UTC(),
		Options:        opts,
	}, nil
}

// buildInputDigest folds the slugs and source checksums of the publishable
// set into a single digest. Identical inputs yield the same build ID.
func buildInputDigest(posts []*content.Post) string {
	hasher := sha256.New()
	for _, post := range posts {
		if post == nil {
			continue
		}
		hasher.Write([]byte(post.Slug))
		hasher.Write([]byte{0})
		hasher.Write(post.Checksum)
		hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
