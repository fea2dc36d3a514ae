package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSCI4830-UNO/PetChart/internal/presentation"
)

func TestGetHandle_Integration(t *testing.T) {
	services := setupServices(t)

	content := pngContent(4096)
	stored, err := services.blobStore.Put(context.Background(), bytes.NewReader(content),
		int64(len(content)), "image/png", "rex.png", nil)
	require.NoError(t, err)

	t.Run("download streams the stored bytes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/images/"+stored.ID, nil)
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, content, rec.Body.Bytes())
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, presentation.ImmutableCacheControl, rec.Header().Get("Cache-Control"))
		assert.Equal(t, `inline; filename="rex.png"`, rec.Header().Get(echo.HeaderContentDisposition))
	})

	t.Run("downloads need no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/images/"+stored.ID, nil)
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("head returns headers without a body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodHead, "/api/images/"+stored.ID, nil)
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
		assert.Equal(t, fmt.Sprintf("%d", len(content)), rec.Header().Get(echo.HeaderContentLength))
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/images/..%2F..%2Fetc%2Fpasswd", nil)
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/images/00000000-0000-4000-8000-000000000000", nil)
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("head on unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodHead, "/api/images/00000000-0000-4000-8000-000000000000", nil)
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
