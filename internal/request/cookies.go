package request

import (
	"net/url"
	"strings"
)

// ParseCookies parses the values of one or more Cookie headers. The
// first occurrence of a name wins. Values are unquoted and, where
// possible, percent-decoded.
func ParseCookies(headers []string) map[string]string {
	cookies := make(map[string]string)

	for _, header := range headers {
		for _, pair := range strings.Split(header, ";") {
			name, value, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}

			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			if _, exists := cookies[name]; exists {
				continue
			}

			cookies[name] = decodeCookieValue(strings.TrimSpace(value))
		}
	}

	return cookies
}

func decodeCookieValue(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}

	if !strings.Contains(value, "%") {
		return value
	}

	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}

	return value
}
