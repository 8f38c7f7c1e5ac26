package highlight

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

// Block is the inner content of a directive, captured unrendered when the
// directive is compiled. It's rendered fresh on every render call, never once
// at compile time, because the content may reference per-request context
// values.
type Block interface {
	// Render produces the block's HTML for one render call.
	Render(ctx context.Context, data RenderContext) (string, error)
}

// BlockFunc adapts a function to the Block interface.
type BlockFunc func(ctx context.Context, data RenderContext) (string, error)

// Render calls the wrapped function.
func (f BlockFunc) Render(ctx context.Context, data RenderContext) (string, error) {
	return f(ctx, data)
}

// TemplateBlock is a Block backed by a named template in an html/template
// tree, the usual host engine for this package. The RenderContext's value
// mapping is the template's data.
type TemplateBlock struct {
	// Template is the parsed template tree containing the block.
	Template *template.Template

	// Name is the name of the template to execute within the tree.
	Name string
}

// Render executes the named template against the context's values.
func (b TemplateBlock) Render(_ context.Context, data RenderContext) (string, error) {
	var out strings.Builder
	err := b.Template.ExecuteTemplate(&out, b.Name, data.Values())
	if err != nil {
		return "", fmt.Errorf("error executing template %q: %w", b.Name, err)
	}
	return out.String(), nil
}

// StaticBlock is a Block whose content is fixed, for fragments that were
// already rendered before the directive sees them.
type StaticBlock string

// Render returns the block's content unchanged.
func (b StaticBlock) Render(_ context.Context, _ RenderContext) (string, error) {
	return string(b), nil
}
