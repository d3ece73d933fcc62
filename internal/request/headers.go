package request

import (
	"net/http"
	"sort"
	"strings"
)

// singleValueHeaders keep only their first value when sent more than once.
var singleValueHeaders = map[string]struct{}{
	"age":                 {},
	"authorization":       {},
	"content-length":      {},
	"content-type":        {},
	"etag":                {},
	"expires":             {},
	"from":                {},
	"host":                {},
	"if-modified-since":   {},
	"if-unmodified-since": {},
	"last-modified":       {},
	"location":            {},
	"max-forwards":        {},
	"proxy-authorization": {},
	"referer":             {},
	"retry-after":         {},
	"server":              {},
	"user-agent":          {},
}

// FlattenHeaders lower-cases header names and folds repeated values
// into a single string. net/http moves the Host header out of the map,
// so host is reported separately.
func FlattenHeaders(header http.Header, host string) map[string]string {
	// sort names so folding is deterministic when several spellings
	// of a name lower-case to the same key
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string][]string, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		values[key] = append(values[key], header[name]...)
	}

	headers := make(map[string]string, len(values)+1)
	for key, vv := range values {
		if len(vv) == 0 {
			continue
		}

		headers[key] = joinHeaderValues(key, vv)
	}

	if _, ok := headers["host"]; !ok && host != "" {
		headers["host"] = host
	}

	return headers
}

func joinHeaderValues(key string, values []string) string {
	if _, ok := singleValueHeaders[key]; ok {
		return values[0]
	}

	if key == "cookie" {
		return strings.Join(values, "; ")
	}

	return strings.Join(values, ", ")
}
