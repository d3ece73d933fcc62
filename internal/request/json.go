package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/lambda-feedback/mirror/util"
)

// object keeps the members of a JSON object in output order.
type object struct {
	keys   []string
	values map[string]any
}

// normalizeJSON re-encodes a valid JSON document the way a JavaScript
// parse and stringify round trip does:
//   - numbers take their shortest form, out of range numbers become null
//   - a duplicate key keeps the last value at the position of the first
//   - array index keys come first in ascending order
//   - invalid UTF-8 in strings is replaced with U+FFFD
func normalizeJSON(raw []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	var buf bytes.Buffer
	if err := writeValue(&buf, value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	}

	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

func decodeObject(dec *json.Decoder) (*object, error) {
	obj := &object{values: make(map[string]any)}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		if _, seen := obj.values[key]; !seen {
			obj.keys = append(obj.keys, key)
		}
		obj.values[key] = value
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	sortIndexKeys(obj.keys)

	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	values := []any{}

	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return values, nil
}

// sortIndexKeys moves array index keys ahead of the other keys, in
// ascending numeric order. The other keys keep their order.
func sortIndexKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, aIndex := arrayIndex(keys[i])
		b, bIndex := arrayIndex(keys[j])

		if aIndex && bIndex {
			return a < b
		}

		return aIndex && !bIndex
	})
}

// arrayIndex reports whether key is the canonical decimal form of an
// integer in [0, 2^32-2].
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}

	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}

	return n, true
}

func writeValue(buf *bytes.Buffer, value any) error {
	switch v := value.(type) {
	case *object:
		buf.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, v.values[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case json.Number:
		return writeNumber(buf, v)
	}

	data, err := util.MarshalJSON(value)
	if err != nil {
		return err
	}

	buf.Write(data)
	return nil
}

func writeNumber(buf *bytes.Buffer, n json.Number) error {
	// a range error still yields ±Inf, which has no JSON form
	f, _ := strconv.ParseFloat(n.String(), 64)
	if math.IsInf(f, 0) {
		buf.WriteString("null")
		return nil
	}

	// negative zero prints as 0
	if f == 0 {
		f = 0
	}

	data, err := util.MarshalJSON(f)
	if err != nil {
		return err
	}

	buf.Write(data)
	return nil
}
