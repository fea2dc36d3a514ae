package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/dto"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation"
)

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(presentation.AuthKey, sessionBearer(t, testOwner))

	return req
}

func TestPhotosHandlers_Integration(t *testing.T) {
	services := setupServices(t)
	ctx := context.Background()

	first := uploadImage(t, services, "")
	second := uploadImage(t, services, "")

	petID := seedPet(t, services.db, testOwner, []string{first.URL, second.URL})
	strayPetID := seedPet(t, services.db, "mallory@example.com", nil)

	t.Run("list returns the stored references", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/pets/"+petID+"/photos", nil)
		req.Header.Set(presentation.AuthKey, sessionBearer(t, testOwner))
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var result dto.PhotoListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, []string{first.URL, second.URL}, result.Photos)
	})

	t.Run("list requires a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/pets/"+petID+"/photos", nil)
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("someone else's pet is not found", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/pets/"+strayPetID+"/photos",
			dto.PhotoReplaceRequest{Photos: []string{first.URL}})
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("replace cleans up dropped blobs", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/pets/"+petID+"/photos",
			dto.PhotoReplaceRequest{Photos: []string{second.URL}})
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var result dto.PhotoReplaceResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, []string{second.URL}, result.Photos)
		assert.Equal(t, []string{first.FileID}, result.Orphans)
		assert.Equal(t, 1, result.OrphansDeleted)

		_, err := services.blobStore.Stat(ctx, first.FileID)
		require.Error(t, err, "the dropped blob must be gone")

		_, err = services.blobStore.Stat(ctx, second.FileID)
		require.NoError(t, err, "the kept blob must survive")
	})

	t.Run("delete removes the record and its blobs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/pets/"+petID, nil)
		req.Header.Set(presentation.AuthKey, sessionBearer(t, testOwner))
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var result map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.EqualValues(t, 1, result["orphansDeleted"])

		_, err := services.blobStore.Stat(ctx, second.FileID)
		require.Error(t, err)

		getReq := httptest.NewRequest(http.MethodGet, "/api/pets/"+petID+"/photos", nil)
		getReq.Header.Set(presentation.AuthKey, sessionBearer(t, testOwner))
		getRec := httptest.NewRecorder()
		services.app.ServeHTTP(getRec, getReq)
		assert.Equal(t, http.StatusNotFound, getRec.Code)
	})

	t.Run("delete on a missing pet", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/pets/"+petID, nil)
		req.Header.Set(presentation.AuthKey, sessionBearer(t, testOwner))
		rec := httptest.NewRecorder()
		services.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
