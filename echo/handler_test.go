package echo_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/mirror/echo"
	"github.com/lambda-feedback/mirror/echo/schema"
)

func setupLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

func setupHandler(t *testing.T, config echo.Config) echo.Handler {
	handler, err := echo.NewEchoHandler(echo.HandlerParams{
		Config: config,
		Log:    setupLogger(t),
	})
	require.NoError(t, err)

	return handler
}

func staticBody(body string) func() (json.RawMessage, error) {
	return func() (json.RawMessage, error) {
		if body == "" {
			return nil, nil
		}
		return json.RawMessage(body), nil
	}
}

func failingBody() (json.RawMessage, error) {
	return nil, errors.New("invalid json")
}

func requireCacheHeaders(t *testing.T, header http.Header) {
	t.Helper()

	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.Equal(t, "max-age=3600", header.Get("Vercel-CDN-Cache-Control"))
	assert.Equal(t, "max-age=60", header.Get("CDN-Cache-Control"))
	assert.Equal(t, "max-age=10", header.Get("Cache-Control"))
}

func TestEchoHandler_Handle_Success(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	req := echo.Request{
		Path:    "/",
		Method:  http.MethodPost,
		Query:   echo.Query{"a": {"1"}, "b": {"1", "2"}},
		Cookies: map[string]string{"session": "abc"},
		Headers: map[string]string{"x-test": "1", "host": "example.com"},
		Body:    staticBody(`{"hello":"world","n":[1,2.5]}`),
	}

	resp := handler.Handle(context.Background(), req)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	requireCacheHeaders(t, resp.Header)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body, &payload))

	assert.Equal(t, map[string]any{"hello": "world", "n": []any{1.0, 2.5}}, payload["body"])
	assert.Equal(t, map[string]any{"a": "1", "b": []any{"1", "2"}}, payload["query"])
	assert.Equal(t, map[string]any{"session": "abc"}, payload["cookies"])
	assert.Equal(t, map[string]any{"x-test": "1", "host": "example.com"}, payload["headers"])
}

func TestEchoHandler_Handle_EmptyBodyScenario(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	req := echo.Request{
		Method:  http.MethodGet,
		Query:   echo.Query{"a": {"1"}},
		Headers: map[string]string{"x-test": "1"},
		Body:    staticBody(`{}`),
	}

	resp := handler.Handle(context.Background(), req)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		`{"body":{},"query":{"a":"1"},"cookies":{},"headers":{"x-test":"1"}}`,
		string(resp.Body),
	)
}

func TestEchoHandler_Handle_BodyError(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	req := echo.Request{
		Method:  http.MethodPost,
		Query:   echo.Query{"a": {"1"}},
		Headers: map[string]string{"content-type": "application/json"},
		Body:    failingBody,
	}

	resp := handler.Handle(context.Background(), req)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	requireCacheHeaders(t, resp.Header)
	assert.Equal(t, `{"error":"My custom 400 error"}`, string(resp.Body))
}

func TestEchoHandler_Handle_UndefinedBody(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	resp := handler.Handle(context.Background(), echo.Request{
		Method: http.MethodGet,
		Body:   staticBody(""),
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"query":{},"cookies":{},"headers":{}}`, string(resp.Body))
}

func TestEchoHandler_Handle_MissingBodyAccessor(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	resp := handler.Handle(context.Background(), echo.Request{})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"query":{},"cookies":{},"headers":{}}`, string(resp.Body))
}

func TestEchoHandler_Handle_NullBody(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	resp := handler.Handle(context.Background(), echo.Request{
		Body: staticBody("null"),
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"body":null,"query":{},"cookies":{},"headers":{}}`, string(resp.Body))
}

func TestEchoHandler_Handle_NoHTMLEscaping(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	resp := handler.Handle(context.Background(), echo.Request{
		Query: echo.Query{"q": {"<b>&</b>"}},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `"q":"<b>&</b>"`)
}

func TestEchoHandler_Handle_UnencodableBody(t *testing.T) {
	handler := setupHandler(t, echo.Config{})

	resp := handler.Handle(context.Background(), echo.Request{
		Body: staticBody(`{not json`),
	})

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	requireCacheHeaders(t, resp.Header)
}

func TestEchoHandler_Handle_Idempotent(t *testing.T) {
	newRequest := func() echo.Request {
		return echo.Request{
			Method:  http.MethodPut,
			Query:   echo.Query{"z": {"1"}, "a": {"2", "3"}, "m": {""}},
			Cookies: map[string]string{"b": "2", "a": "1"},
			Headers: map[string]string{"x-b": "2", "x-a": "1", "accept": "*/*"},
			Body:    staticBody(`{"k":"v"}`),
		}
	}

	first := setupHandler(t, echo.Config{}).Handle(context.Background(), newRequest())
	second := setupHandler(t, echo.Config{}).Handle(context.Background(), newRequest())

	assert.Equal(t, first.StatusCode, second.StatusCode)
	assert.Equal(t, first.Header, second.Header)
	assert.Equal(t, string(first.Body), string(second.Body))
}

func TestEchoHandler_Handle_PayloadMatchesSchema(t *testing.T) {
	handler := setupHandler(t, echo.Config{ValidateResponse: true})

	s, err := schema.New()
	require.NoError(t, err)

	ok := handler.Handle(context.Background(), echo.Request{
		Query:   echo.Query{"a": {"1", "2"}},
		Cookies: map[string]string{"c": "d"},
		Headers: map[string]string{"x": "y"},
		Body:    staticBody(`[1,2,3]`),
	})
	res, err := s.Validate(schema.SchemaTypeEcho, ok.Body)
	require.NoError(t, err)
	assert.True(t, res.Valid())

	failed := handler.Handle(context.Background(), echo.Request{Body: failingBody})
	res, err = s.Validate(schema.SchemaTypeError, failed.Body)
	require.NoError(t, err)
	assert.True(t, res.Valid())
}

func TestQuery_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		query    echo.Query
		expected string
	}{
		{"nil", nil, `{}`},
		{"single", echo.Query{"a": {"1"}}, `{"a":"1"}`},
		{"multiple", echo.Query{"a": {"1", "2"}}, `{"a":["1","2"]}`},
		{"empty value", echo.Query{"a": {""}}, `{"a":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.query)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}
