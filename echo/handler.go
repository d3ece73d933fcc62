package echo

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/mirror/echo/schema"
)

// BodyErrorMessage is returned to the caller when the body cannot be read.
const BodyErrorMessage = "My custom 400 error"

// HandlerParams defines the dependencies for the echo handler.
type HandlerParams struct {
	fx.In

	Config Config

	Log *zap.Logger
}

// Handler is the interface for handling echo requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// EchoHandler reflects the request facets back to the caller.
type EchoHandler struct {
	config Config

	schema *schema.Schema

	log *zap.Logger
}

var _ Handler = (*EchoHandler)(nil)

// NewEchoHandler creates a new echo handler.
func NewEchoHandler(params HandlerParams) (Handler, error) {
	h := &EchoHandler{
		config: params.Config,
		log:    params.Log,
	}

	if params.Config.ValidateResponse {
		s, err := schema.New()
		if err != nil {
			return nil, err
		}

		h.schema = s
	}

	return h, nil
}

// Handle handles an echo request. It always produces exactly one response.
func (h *EchoHandler) Handle(ctx context.Context, req Request) Response {
	log := h.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	body, err := readBody(req)
	if err != nil {
		log.Debug("failed to access body", zap.Error(err))
		return h.respond(log, http.StatusBadRequest, ErrorPayload{
			Error: BodyErrorMessage,
		})
	}

	cookies := req.Cookies
	if cookies == nil {
		cookies = map[string]string{}
	}

	headers := req.Headers
	if headers == nil {
		headers = map[string]string{}
	}

	return h.respond(log, http.StatusOK, Payload{
		Body:    body,
		Query:   req.Query,
		Cookies: cookies,
		Headers: headers,
	})
}

// readBody calls the body accessor, treating a missing one as undefined.
func readBody(req Request) (json.RawMessage, error) {
	if req.Body == nil {
		return nil, nil
	}

	return req.Body()
}
