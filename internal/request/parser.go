package request

import (
	"net/http"

	"github.com/lambda-feedback/mirror/echo"
)

type Options struct {
	// MaxBodySize is the maximum number of body bytes read. Values
	// below one fall back to echo.DefaultMaxBodySize.
	MaxBodySize int64
}

// Parser turns inbound http requests into echo requests, exposing the
// query, cookies, headers and a lazily parsed body.
type Parser struct {
	maxBodySize int64
}

func NewParser(opts Options) *Parser {
	maxBodySize := opts.MaxBodySize
	if maxBodySize < 1 {
		maxBodySize = echo.DefaultMaxBodySize
	}

	return &Parser{maxBodySize: maxBodySize}
}

// Parse extracts the facets of r. The body is not read until the
// returned Body accessor is first called.
func (p *Parser) Parse(r *http.Request) echo.Request {
	return echo.Request{
		Path:    r.URL.Path,
		Method:  r.Method,
		Query:   ParseQuery(r.URL.RawQuery),
		Cookies: ParseCookies(r.Header.Values("Cookie")),
		Headers: FlattenHeaders(r.Header, r.Host),
		Body:    p.bodyAccessor(r),
	}
}
