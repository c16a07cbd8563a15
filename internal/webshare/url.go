package webshare

import (
	whatwg "github.com/nlnwa/whatwg-url/url"
)

// Non-fatal validation errors (stray '%', backslashes, missing slashes)
// are tolerated the same way a browser tolerates them.
var urlParser = whatwg.NewParser()

// ParseBase parses an absolute location to resolve shared URLs against.
func ParseBase(raw string) (*whatwg.Url, error) {
	return urlParser.Parse(raw)
}

// resolveURL parses raw as a URL reference relative to base, which may be
// nil.
func resolveURL(base *whatwg.Url, raw string) (*whatwg.Url, error) {
	return urlParser.BasicParser(raw, base, nil, whatwg.NoState)
}
