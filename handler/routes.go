package handler

import (
	"net/http"

	"github.com/lambda-feedback/mirror/internal/server"
)

// NewEchoRoute mounts the echo handler for every method and path.
func NewEchoRoute(handler *EchoHandler) server.HttpHandlerResult {
	return server.AsHttpHandler(server.RootPattern, handler)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health", http.HandlerFunc(HealthHandler))
}
