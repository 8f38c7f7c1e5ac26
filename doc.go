// Package highlight marks navigation links as "active" in rendered HTML.
//
// highlight is a post-processing step for a host templating engine. A
// Directive captures the inner content of a template block, renders it per
// call, parses the result as an HTML fragment, and appends a CSS class to
// every anchor whose href is a prefix of the current request path. The
// homepage link only matches the homepage, so a nav full of links rooted at
// "/" doesn't light up on every page.
//
// Two directives exist, compiled from the same option grammar. The directive
// compiled by NewHighlightHere adds the class to the matching anchors
// themselves; the one compiled by NewHighlightHereParent adds it to each
// anchor's containing element instead, which is useful for nested navs where
// the highlight style belongs on the surrounding <li>.
//
// Directives are compiled once, when the host engine parses the template, and
// rendered many times. The current path comes from an explicit option, or from
// a "request" entry in the RenderContext; when neither is available the
// directive either fails loudly (Config.Strict) or logs a warning and returns
// the content unhighlighted, so a page that renders without full context, such
// as an error page, still renders.
//
// Hosts that name directives by string, the way a template parser encounters
// them, can compile through a Library, which maps the directive names
// "highlight_here" and "highlight_here_parent" to their constructors.
package highlight
