package echo

import (
	"encoding/json"
	"net/http"

	"github.com/lambda-feedback/mirror/util"
)

// Request holds the parsed facets of an inbound request.
type Request struct {
	Path   string
	Method string

	Query   Query
	Cookies map[string]string
	Headers map[string]string

	// Body returns the parsed request body as encoded JSON. A nil
	// message means the body is undefined. An error means the body
	// could not be parsed.
	Body func() (json.RawMessage, error)
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Query maps a parameter name to its values, in the order they
// appeared. A single value encodes as a JSON string, several values
// encode as an array.
type Query map[string][]string

func (q Query) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(q))
	for key, values := range q {
		if len(values) == 1 {
			m[key] = values[0]
		} else {
			m[key] = values
		}
	}

	return util.MarshalJSON(m)
}

// Payload is the document returned for a successful echo.
type Payload struct {
	Body    json.RawMessage   `json:"body,omitempty"`
	Query   Query             `json:"query"`
	Cookies map[string]string `json:"cookies"`
	Headers map[string]string `json:"headers"`
}

// ErrorPayload is the document returned when the body cannot be read.
type ErrorPayload struct {
	Error string `json:"error"`
}
