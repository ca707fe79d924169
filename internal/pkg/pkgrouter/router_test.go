package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgerror"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func serve(t *testing.T, r *Router, target string, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRouter(t *testing.T) {
	r := NewRouter(fixedID("req-1"))
	r.GET("/items/:id", func(ctx context.Context, req *http.Request) (any, error) {
		return map[string]string{"id": Param(req, "id"), "request_id": RequestID(ctx)}, nil
	})
	r.GET("/bad", func(context.Context, *http.Request) (any, error) {
		return nil, pkgerror.NewBusiness("origin is required", pkgerror.CodeInvalidInput)
	})
	r.GET("/boom", func(context.Context, *http.Request) (any, error) {
		return nil, errors.New("secret internals")
	})

	t.Run("Success", func(t *testing.T) {
		rec, body := serve(t, r, "/items/42", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-1", rec.Header().Get(HeaderRequestID))
		data := body["data"].(map[string]any)
		assert.Equal(t, "42", data["id"])
		assert.Equal(t, "req-1", data["request_id"])
	})

	t.Run("IncomingRequestID", func(t *testing.T) {
		rec, _ := serve(t, r, "/items/1", http.Header{HeaderRequestID: {"abc"}})
		assert.Equal(t, "abc", rec.Header().Get(HeaderRequestID))
	})

	t.Run("BusinessError", func(t *testing.T) {
		rec, body := serve(t, r, "/bad", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "origin is required", body["message"])
	})

	t.Run("InternalErrorHidesDetails", func(t *testing.T) {
		rec, body := serve(t, r, "/boom", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", body["message"])
	})

	t.Run("NoRoute", func(t *testing.T) {
		rec, body := serve(t, r, "/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "route not found", body["message"])
	})
}
