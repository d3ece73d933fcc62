package handler

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/mirror/echo"
	"github.com/lambda-feedback/mirror/internal/request"
)

const requestIDHeader = "X-Request-Id"

type EchoHandlerParams struct {
	fx.In

	Handler echo.Handler
	Config  echo.Config
	Log     *zap.Logger
}

func NewEchoHandler(params EchoHandlerParams) *EchoHandler {
	return &EchoHandler{
		handler: params.Handler,
		parser: request.NewParser(request.Options{
			MaxBodySize: params.Config.MaxBodySize,
		}),
		log: params.Log,
	}
}

// EchoHandler serves the echo endpoint over net/http.
type EchoHandler struct {
	handler echo.Handler
	parser  *request.Parser
	log     *zap.Logger
}

func (h *EchoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("request_id", requestID),
	)

	log.Debug("handling request")

	// Handle the request
	response := h.handler.Handle(r.Context(), h.parser.Parse(r))

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
		return
	}

	log.Debug("request handled", zap.Int("status", response.StatusCode))
}
