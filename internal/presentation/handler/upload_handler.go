package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CSCI4830-UNO/PetChart/internal/application/usecase"
	"github.com/CSCI4830-UNO/PetChart/internal/application/usecase/abstraction"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/dto"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/blobstore"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation"
	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Handle handles POST /api/images/upload requests: multipart `file`,
// optional `filename` and `previousId` (bare id or retrieval URL).
func (h *UploadHandler) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "No file provided",
		})
	}

	filename := c.FormValue(presentation.FilenameField)
	if filename == "" {
		filename = fileHeader.Filename
	}
	previousRef := c.FormValue(presentation.PreviousIDField)

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Unreadable file",
		})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)

	result, err := h.uploader.UploadAndSwap(c.Request().Context(), file, fileHeader.Size,
		contentType, filename, previousRef)
	if err != nil {
		if isValidationError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}

		logger.Error("upload failed", "err", err.Error())

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Upload failed",
		})
	}

	return c.JSON(http.StatusCreated, dto.UploadResponse{
		FileID:          result.FileID,
		URL:             result.URL,
		DeletedPrevious: result.DeletedPrevious,
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, usecase.ErrNoContent) ||
		errors.Is(err, usecase.ErrInvalidType) ||
		errors.Is(err, usecase.ErrTooLarge) ||
		errors.Is(err, blobstore.ErrTypeMismatch)
}
