package util

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes v like json.Marshal, but leaves HTML characters
// unescaped so echoed strings come back exactly as they were sent.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encode terminates every value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
