// Package markdown loads Markdown documents from disk, extracts their
// frontmatter, and renders bodies to HTML. It is the Content Loader and
// Renderer half of the build pipeline; assembling documents into a site is
// the generator's job.
package markdown
