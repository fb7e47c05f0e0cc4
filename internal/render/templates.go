package render

// Built-in templates keyed by the names the generator renders with. Sites can
// replace either one by dropping a file with the same base name into the
// configured template directory.
var builtinTemplates = map[string]string{
	"post":  builtinPostTemplate,
	"index": builtinIndexTemplate,
}

const builtinPostTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Post.Post.Title }}{{ with .Site.Title }} &middot; {{ . }}{{ end }}</title>
{{- with .Post.Post.Summary }}
  <meta name="description" content="{{ . }}">
{{- end }}
{{- with .Post.Permalink }}
  <link rel="canonical" href="{{ . }}">
{{- end }}
</head>
<body>
  <header>
    <nav><a href="{{ .Helpers.WithBaseURL "/" }}">{{ with .Site.Title }}{{ . }}{{ else }}Home{{ end }}</a></nav>
  </header>
  <main>
    <article>
      <h1>{{ .Post.Post.Title }}</h1>
      <p>
        <time datetime="{{ .Post.Post.Date.Format "2006-01-02" }}">{{ formatDate .Post.Post.Date "" }}</time>
{{- with .Post.Post.Author }}
        &middot; {{ . }}
{{- end }}
{{- if .Post.Post.Draft }}
        &middot; <em>draft</em>
{{- end }}
      </p>
{{- with .Post.Post.Tags }}
      <p>{{ joinTags . }}</p>
{{- end }}
      {{ safeHTML .Post.Post.BodyHTML }}
    </article>
  </main>
  <footer>
    <p><a href="{{ .Helpers.WithBaseURL "/feed.xml" }}">RSS</a></p>
  </footer>
</body>
</html>
`

const builtinIndexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ with .Site.Title }}{{ . }}{{ else }}Posts{{ end }}</title>
{{- with .Site.Description }}
  <meta name="description" content="{{ . }}">
{{- end }}
  <link rel="alternate" type="application/rss+xml" href="{{ .Helpers.WithBaseURL "/feed.xml" }}">
</head>
<body>
  <header>
    <h1>{{ with .Site.Title }}{{ . }}{{ else }}Posts{{ end }}</h1>
{{- with .Site.Description }}
    <p>{{ . }}</p>
{{- end }}
  </header>
  <main>
    <ul>
{{- range .Posts }}
      <li>
        <a href="{{ .Route }}">{{ .Title }}</a>
        <time datetime="{{ .Date.Format "2006-01-02" }}">{{ formatDate .Date "" }}</time>
{{- if .Draft }}
        <em>draft</em>
{{- end }}
{{- with .Summary }}
        <p>{{ . }}</p>
{{- end }}
      </li>
{{- end }}
    </ul>
  </main>
</body>
</html>
`
