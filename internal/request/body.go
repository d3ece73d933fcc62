package request

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"sync"

	"github.com/lambda-feedback/mirror/util"
)

const (
	mediaTypeJSON        = "application/json"
	mediaTypeForm        = "application/x-www-form-urlencoded"
	mediaTypeText        = "text/plain"
	mediaTypeOctetStream = "application/octet-stream"
)

var emptyObject = json.RawMessage(`{}`)

// buffer encodes raw bytes the way Node.js serializes a Buffer.
type buffer []byte

func (b buffer) MarshalJSON() ([]byte, error) {
	data := make([]int, len(b))
	for i, c := range b {
		data[i] = int(c)
	}

	return util.MarshalJSON(struct {
		Type string `json:"type"`
		Data []int  `json:"data"`
	}{
		Type: "Buffer",
		Data: data,
	})
}

// bodyAccessor returns a memoized accessor parsing the body of r.
func (p *Parser) bodyAccessor(r *http.Request) func() (json.RawMessage, error) {
	return sync.OnceValues(func() (json.RawMessage, error) {
		return p.parseBody(r)
	})
}

// parseBody decodes the body according to its media type. Bodies
// without a content type, or with a type not listed here, are
// undefined and yield a nil message.
func (p *Parser) parseBody(r *http.Request) (json.RawMessage, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, newBodyError(ErrInvalidContentType, err)
	}

	switch mediaType {
	case mediaTypeJSON:
		raw, err := p.readBody(r)
		if err != nil {
			return nil, err
		}
		return parseJSON(raw)
	case mediaTypeForm:
		raw, err := p.readBody(r)
		if err != nil {
			return nil, err
		}
		return encode(ParseQuery(string(raw)))
	case mediaTypeText:
		raw, err := p.readBody(r)
		if err != nil {
			return nil, err
		}
		return encode(string(raw))
	case mediaTypeOctetStream:
		raw, err := p.readBody(r)
		if err != nil {
			return nil, err
		}
		return encode(buffer(raw))
	default:
		return nil, nil
	}
}

func (p *Parser) readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, p.maxBodySize+1))
	if err != nil {
		return nil, newBodyError(ErrBodyUnreadable, err)
	}

	if int64(len(data)) > p.maxBodySize {
		return nil, newBodyError(ErrBodyTooLarge, nil)
	}

	return data, nil
}

// parseJSON validates raw and returns it normalized. An empty body
// parses to an empty object.
func parseJSON(raw []byte) (json.RawMessage, error) {
	if len(raw) == 0 {
		return emptyObject, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, newBodyError(ErrInvalidJSON, err)
	}

	normalized, err := normalizeJSON(buf.Bytes())
	if err != nil {
		return nil, newBodyError(ErrInvalidJSON, err)
	}

	return normalized, nil
}

func encode(v any) (json.RawMessage, error) {
	data, err := util.MarshalJSON(v)
	if err != nil {
		return nil, err
	}

	return data, nil
}
