package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Config controls template discovery for the HTML renderer.
type Config struct {
	// TemplateDir points at a directory of .html/.tmpl files that override
	// the built-in templates. Optional.
	TemplateDir string
}

// HTMLRenderer implements interfaces.TemplateRenderer backed by html/template.
// Built-in post and index templates ship with the renderer so a site builds
// out of the box; files in TemplateDir replace them by name.
type HTMLRenderer struct {
	cfg Config

	once   sync.Once
	tpl    *template.Template
	err    error
	global any
	mu     sync.RWMutex
}

// NewHTMLRenderer constructs a renderer. The template directory is validated
// lazily on first render so construction never touches the disk.
func NewHTMLRenderer(cfg Config) *HTMLRenderer {
	return &HTMLRenderer{cfg: cfg}
}

var _ interfaces.TemplateRenderer = (*HTMLRenderer)(nil)

func (r *HTMLRenderer) ensureTemplates() (*template.Template, error) {
	r.once.Do(func() {
		root := template.New("sitegen").Funcs(r.templateFuncs())

		for name, body := range builtinTemplates {
			if _, err := root.New(name).Parse(body); err != nil {
				r.err = fmt.Errorf("render: parse builtin template %q: %w", name, err)
				return
			}
		}

		dir := strings.TrimSpace(r.cfg.TemplateDir)
		if dir != "" {
			info, err := os.Stat(dir)
			if err != nil {
				r.err = fmt.Errorf("render: inspect template directory: %w", err)
				return
			}
			if !info.IsDir() {
				r.err = fmt.Errorf("render: template path %q is not a directory", dir)
				return
			}

			err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
				if walkErr != nil {
					return walkErr
				}
				if entry.IsDir() {
					return nil
				}
				ext := strings.ToLower(filepath.Ext(path))
				if ext != ".html" && ext != ".tmpl" {
					return nil
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				_, err = root.New(name).Parse(string(data))
				return err
			})
			if err != nil {
				r.err = fmt.Errorf("render: load templates from %s: %w", dir, err)
				return
			}
		}

		r.tpl = root
	})
	return r.tpl, r.err
}

// Render is an alias for RenderTemplate.
func (r *HTMLRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the named template. When an output writer is
// supplied the rendered bytes go there and the returned string is empty.
func (r *HTMLRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	tpl, err := r.ensureTemplates()
	if err != nil {
		return "", err
	}
	if tpl.Lookup(name) == nil {
		return "", fmt.Errorf("render: template %q not found", name)
	}

	var writer io.Writer
	var buffer *bytes.Buffer
	if len(out) > 0 && out[0] != nil {
		writer = out[0]
	} else {
		buffer = &bytes.Buffer{}
		writer = buffer
	}

	if err := tpl.ExecuteTemplate(writer, name, data); err != nil {
		return "", fmt.Errorf("render: execute template %q: %w", name, err)
	}
	if buffer != nil {
		return buffer.String(), nil
	}
	return "", nil
}

// RenderString parses and executes an inline template.
func (r *HTMLRenderer) RenderString(content string, data any, out ...io.Writer) (string, error) {
	tpl, err := template.New("inline").Funcs(r.templateFuncs()).Parse(content)
	if err != nil {
		return "", fmt.Errorf("render: parse inline template: %w", err)
	}

	var writer io.Writer
	var buffer *bytes.Buffer
	if len(out) > 0 && out[0] != nil {
		writer = out[0]
	} else {
		buffer = &bytes.Buffer{}
		writer = buffer
	}

	if err := tpl.Execute(writer, data); err != nil {
		return "", fmt.Errorf("render: execute inline template: %w", err)
	}
	if buffer != nil {
		return buffer.String(), nil
	}
	return "", nil
}

// GlobalContext registers data templates can reach through the global func.
func (r *HTMLRenderer) GlobalContext(data any) error {
	r.mu.Lock()
	r.global = data
	r.mu.Unlock()
	return nil
}

func (r *HTMLRenderer) templateFuncs() template.FuncMap {
	funcs := templateFuncs()
	funcs["global"] = func() any {
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.global
	}
	return funcs
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"safeHTML": func(value any) template.HTML { return toHTML(value) },
		"formatDate": func(ts time.Time, layout string) string {
			if ts.IsZero() {
				return ""
			}
			if strings.TrimSpace(layout) == "" {
				layout = "January 2, 2006"
			}
			return ts.Format(layout)
		},
		"joinTags": func(tags []string) string {
			return strings.Join(tags, ", ")
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"trim":  strings.TrimSpace,
	}
}

func toHTML(value any) template.HTML {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case template.HTML:
		return v
	case string:
		return template.HTML(v)
	case []byte:
		return template.HTML(v)
	default:
		return template.HTML(fmt.Sprint(v))
	}
}
