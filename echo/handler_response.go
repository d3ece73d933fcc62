package echo

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/lambda-feedback/mirror/echo/schema"
	"github.com/lambda-feedback/mirror/util"
)

const (
	HeaderVercelCDNCacheControl = "Vercel-CDN-Cache-Control"
	HeaderCDNCacheControl       = "CDN-Cache-Control"
	HeaderCacheControl          = "Cache-Control"
)

// cacheDirectives are set on every response, in this order.
var cacheDirectives = [][2]string{
	{HeaderVercelCDNCacheControl, "max-age=3600"},
	{HeaderCDNCacheControl, "max-age=60"},
	{HeaderCacheControl, "max-age=10"},
}

var internalErrorBody = []byte(`{"error":"internal error"}`)

// respond encodes the payload and attaches the fixed response headers.
func (h *EchoHandler) respond(log *zap.Logger, status int, payload any) Response {
	body, err := util.MarshalJSON(payload)
	if err != nil {
		log.Error("failed to encode payload", zap.Error(err))
		return newResponse(http.StatusInternalServerError, internalErrorBody)
	}

	if h.schema != nil {
		h.validate(log, status, body)
	}

	return newResponse(status, body)
}

// validate checks the encoded payload against its schema. Mismatches
// are only logged.
func (h *EchoHandler) validate(log *zap.Logger, status int, body []byte) {
	schemaType := schema.SchemaTypeEcho
	if status != http.StatusOK {
		schemaType = schema.SchemaTypeError
	}

	res, err := h.schema.Validate(schemaType, body)
	if err != nil {
		log.Warn("response validation failed", zap.Error(err))
		return
	}

	if !res.Valid() {
		log.Warn("invalid response payload",
			zap.Stringer("schema", schemaType),
			zap.Any("errors", res.Errors()),
		)
	}
}

// newResponse creates a new response.
func newResponse(status int, body []byte) Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	for _, directive := range cacheDirectives {
		header.Set(directive[0], directive[1])
	}

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}
