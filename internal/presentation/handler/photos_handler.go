package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CSCI4830-UNO/PetChart/internal/application/usecase/abstraction"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/dto"
	petsRepository "github.com/CSCI4830-UNO/PetChart/internal/domain/repository/database"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation"
	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

type PhotosHandler struct {
	photos abstraction.PhotoManager
}

func NewPhotosHandler(photos abstraction.PhotoManager) *PhotosHandler {
	return &PhotosHandler{photos: photos}
}

// HandleList handles GET /api/pets/:id/photos requests.
func (h *PhotosHandler) HandleList(c echo.Context) error {
	owner, _ := c.Get(presentation.OwnerKey).(string)
	petID := c.Param(presentation.IDParam)

	photos, err := h.photos.ListPhotos(c.Request().Context(), petID, owner)
	if err != nil {
		return petError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PhotoListResponse{Photos: photos})
}

// HandleReplace handles PUT /api/pets/:id/photos requests: a full
// replacement of the pet's photo reference list. Blobs referenced only by
// the previous list are cleaned up best-effort.
func (h *PhotosHandler) HandleReplace(c echo.Context) error {
	owner, _ := c.Get(presentation.OwnerKey).(string)
	petID := c.Param(presentation.IDParam)

	var req dto.PhotoReplaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	result, err := h.photos.ReplacePhotos(c.Request().Context(), petID, owner, req.Photos)
	if err != nil {
		return petError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PhotoReplaceResponse{
		Photos:         result.Photos,
		Orphans:        result.Orphans,
		OrphansDeleted: result.OrphansDeleted,
	})
}

// HandleDeletePet handles DELETE /api/pets/:id requests: removes the
// record, then reconciles its references away from the store.
func (h *PhotosHandler) HandleDeletePet(c echo.Context) error {
	owner, _ := c.Get(presentation.OwnerKey).(string)
	petID := c.Param(presentation.IDParam)

	result, err := h.photos.DeletePet(c.Request().Context(), petID, owner)
	if err != nil {
		return petError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":        "Pet deleted successfully",
		"orphansDeleted": result.OrphansDeleted,
	})
}

func petError(c echo.Context, err error) error {
	if errors.Is(err, petsRepository.ErrPetNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Pet not found",
		})
	}

	logger.Error("pet photo operation failed", "err", err.Error())

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "Operation failed",
	})
}
