package highlight

import "strings"

// IsHere reports whether current is "underneath" url, meaning a link to url
// should be highlighted when the page at current is being viewed.
//
// The root URL "/" is special-cased: it only matches when current is exactly
// "/", because every path has "/" as a prefix and the homepage link shouldn't
// be highlighted on every page. Every other url matches by literal string
// prefix. No normalization of trailing slashes, case, or percent-encoding is
// performed; both strings are compared as given.
func IsHere(current, url string) bool {
	if url == "/" {
		return current == "/"
	}
	return strings.HasPrefix(current, url)
}
