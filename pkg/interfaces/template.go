package interfaces

import (
	"io"
)

// TemplateRenderer renders named templates into HTML. The generator stays
// agnostic of the template engine; hosts can swap the built-in renderer for a
// theme-aware engine as long as it satisfies this contract.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
