package highlight

import "net/http"

// RenderContext is the name-to-value mapping the host templating engine
// supplies when rendering. This package only reads it: directives look up the
// entry named by an explicit path option, and fall back to the entry named
// "request" when no option was given.
type RenderContext struct {
	values map[string]any
}

// Request is the minimal request shape a RenderContext can carry under the
// "request" key for hosts that don't have an *http.Request on hand.
type Request struct {
	// Path is the path component of the URL being rendered.
	Path string
}

// NewRenderContext wraps the host engine's value mapping. The map is not
// copied; it's owned by the host and treated as read-only here.
func NewRenderContext(values map[string]any) RenderContext {
	return RenderContext{values: values}
}

// Lookup returns the value stored under name, and whether one was stored.
func (rc RenderContext) Lookup(name string) (any, bool) {
	val, ok := rc.values[name]
	return val, ok
}

// Values returns the underlying mapping, for handing to the host engine as
// template data. It may be nil.
func (rc RenderContext) Values() map[string]any {
	return rc.values
}

// RequestPath returns the path of the request this context was built for,
// read from the conventional "request" entry. The entry may be an
// *http.Request, a Request, or a *Request; anything else, or no entry at all,
// reports false.
func (rc RenderContext) RequestPath() (string, bool) {
	val, ok := rc.values["request"]
	if !ok {
		return "", false
	}
	switch req := val.(type) {
	case *http.Request:
		return req.URL.Path, true
	case Request:
		return req.Path, true
	case *Request:
		return req.Path, true
	}
	return "", false
}
