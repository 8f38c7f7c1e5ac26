package highlight

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"golang.org/x/net/html"
)

var (
	// ErrRequestNotInContext is returned when a directive has no explicit
	// path option and the render context has no usable "request" entry to
	// read the path from. Please ensure that the request is made available
	// in the context, or pass the path as a directive option.
	ErrRequestNotInContext = errors.New("request not available in the render context")
)

// DefaultClass is the class appended to matching elements when the directive
// options don't name one.
const DefaultClass = "here"

// Config is the compile-time configuration injected into a directive. The
// zero value is the production configuration.
type Config struct {
	// Strict makes Render propagate ErrRequestNotInContext instead of
	// degrading. Turn it on in development so a missing request entry is
	// visible immediately; leave it off in production, where Render logs a
	// warning and returns the inner content unhighlighted. A page rendered
	// without full context, such as an error page, still renders that way.
	Strict bool
}

// Directive is a compiled highlight directive. It's constructed once, when
// the host engine parses the template, and is immutable afterwards: Render
// may be called many times, concurrently or not, against the same compiled
// Directive; each call works on its own freshly parsed fragment.
type Directive struct {
	class   string
	options []string
	block   Block
	sel     selection
	strict  bool
}

// NewHighlightHere compiles a directive that appends a class to every anchor
// in the block's output whose href matches the current path, per IsHere.
//
// The first option token, if present, is the class to append, with any double
// quote characters removed; it defaults to DefaultClass. The second option
// token, if present, names a render-context entry holding the current path;
// when the entry is absent the token's literal text is the path. With no
// second token the path comes from the context's "request" entry.
func NewHighlightHere(cfg Config, block Block, options ...string) *Directive {
	d := newDirective(cfg, block, options, anchorSelection{})
	if d.class == "" {
		d.class = DefaultClass
	}
	return d
}

// NewHighlightHereParent compiles a directive with the same option grammar
// and matching as NewHighlightHere, but the class is appended to each
// matching anchor's containing element instead of the anchor itself. Useful
// for nested navs where the highlight style belongs on the surrounding
// element. Anchors at the top level of the fragment have no containing
// element and are skipped.
func NewHighlightHereParent(cfg Config, block Block, options ...string) *Directive {
	d := newDirective(cfg, block, options, parentSelection{})
	if d.class == "" {
		d.class = DefaultClass
	}
	return d
}

func newDirective(cfg Config, block Block, options []string, sel selection) *Directive {
	class, rest := parseOptions(options)
	return &Directive{
		class:   class,
		options: rest,
		block:   block,
		sel:     sel,
		strict:  cfg.Strict,
	}
}

// parseOptions splits the raw directive tokens into the highlight class and
// the remaining tokens, kept verbatim. Double quotes are removed from the
// class token so templates can write either active or "active".
func parseOptions(options []string) (class string, rest []string) {
	if len(options) < 1 {
		return "", nil
	}
	return strings.ReplaceAll(options[0], `"`, ""), options[1:]
}

// Class returns the class the directive appends to matching elements.
func (d *Directive) Class() string {
	return d.class
}

// Render renders the captured block against rc, appends the directive's class
// to every element its selection strategy yields, and returns the serialized
// result.
//
// When the current path can't be resolved, a strict directive returns
// ErrRequestNotInContext; a non-strict one logs a warning through the
// context's logger and returns the block's output unchanged. A resolved
// context value that isn't a string is formatted with fmt.Sprint.
func (d *Directive) Render(ctx context.Context, rc RenderContext) (string, error) {
	ctx, span := tracer().Start(ctx, "Directive.Render")
	defer span.End()
	span.SetAttributes(attribute.String("highlight.class", d.class))

	content, err := d.block.Render(ctx, rc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("error rendering directive block: %w", err)
	}

	frag, err := ParseFragment(content)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	path, err := d.resolvePath(rc)
	if err != nil {
		if d.strict {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return "", err
		}
		logger(ctx).WarnContext(ctx, "could not resolve current path, leaving navigation unhighlighted", "error", err)
		return content, nil
	}
	span.SetAttributes(attribute.String("highlight.path", path))

	if d.class != "" {
		for elem := range d.sel.targets(frag, path) {
			addClass(elem, d.class)
		}
	}

	return frag.String(), nil
}

// resolvePath determines the current path for one render call. An explicit
// path option wins; a failed lookup of that option is not an error, the
// option's literal text is the path. Without an option the path is read from
// the context's request entry.
func (d *Directive) resolvePath(rc RenderContext) (string, error) {
	if len(d.options) > 0 {
		expr := d.options[0]
		if val, ok := rc.Lookup(expr); ok {
			if s, isString := val.(string); isString {
				return s, nil
			}
			return fmt.Sprint(val), nil
		}
		return expr, nil
	}
	if path, ok := rc.RequestPath(); ok {
		return path, nil
	}
	return "", ErrRequestNotInContext
}

// selection is the strategy choosing which elements of a parsed fragment get
// the highlight class. The choice between the two implementations is baked in
// when the directive is compiled; there is no runtime switching.
type selection interface {
	targets(frag *Fragment, path string) iter.Seq[*html.Node]
}

// anchorSelection yields every anchor with an href that the current path is
// underneath.
type anchorSelection struct{}

func (anchorSelection) targets(frag *Fragment, path string) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for anchor := range frag.Elements("a", "href") {
			href, _ := attrValue(anchor, "href")
			if !IsHere(path, href) {
				continue
			}
			if !yield(anchor) {
				return
			}
		}
	}
}

// parentSelection yields the containing element of every anchor that
// anchorSelection yields, skipping anchors at the fragment's top level.
type parentSelection struct {
	anchors anchorSelection
}

func (p parentSelection) targets(frag *Fragment, path string) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for anchor := range p.anchors.targets(frag, path) {
			if anchor.Parent == nil {
				continue
			}
			if !yield(anchor.Parent) {
				return
			}
		}
	}
}
