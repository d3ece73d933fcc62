package request

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/lambda-feedback/mirror/echo"
)

// ParseQuery parses a url-encoded string into its parameters. Unlike
// url.ParseQuery it never drops a pair: malformed escapes are kept as
// they were sent.
func ParseQuery(raw string) echo.Query {
	query := make(echo.Query)

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		key = unescapeQuery(key)

		query[key] = append(query[key], unescapeQuery(value))
	}

	return query
}

// unescapeQuery decodes s like url.QueryUnescape. When s holds a
// malformed escape, the valid escapes are still decoded one by one and
// only the malformed ones are kept.
func unescapeQuery(s string) string {
	if unescaped, err := url.QueryUnescape(s); err == nil {
		return unescaped
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
