package generator

import (
	"path"
	"strings"
)

// postOutputPath maps a post slug to its on-disk page location. Every post
// gets a directory with an index.html so servers produce clean URLs.
func postOutputPath(slug string) string {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return "index.html"
	}
	return path.Join("posts", slug, "index.html")
}

// postRoute maps a post slug to its public route.
func postRoute(slug string) string {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return "/"
	}
	return "/posts/" + slug + "/"
}

const indexOutputPath = "index.html"
