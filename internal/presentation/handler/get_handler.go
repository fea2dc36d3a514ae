package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/CSCI4830-UNO/PetChart/internal/application/usecase"
	"github.com/CSCI4830-UNO/PetChart/internal/application/usecase/abstraction"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/blobstore"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation"
	"github.com/CSCI4830-UNO/PetChart/pkg/utils"
)

type GetHandler struct {
	streamer abstraction.Streamer
}

func NewGetHandler(streamer abstraction.Streamer) *GetHandler {
	return &GetHandler{streamer: streamer}
}

// HandleGet handles GET /api/images/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	body, info, err := h.streamer.Stream(c.Request().Context(), id)
	if err != nil {
		return blobError(c, err)
	}
	defer body.Close()

	contentType := setBlobHeaders(c, info)

	return c.Stream(http.StatusOK, contentType, body)
}

// HandleHead handles HEAD /api/images/:id requests: headers only, no
// stream is opened.
func (h *GetHandler) HandleHead(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	info, err := h.streamer.Probe(c.Request().Context(), id)
	if err != nil {
		return blobError(c, err)
	}

	setBlobHeaders(c, info)

	return c.NoContent(http.StatusOK)
}

func setBlobHeaders(c echo.Context, info entity.ObjectInfo) string {
	contentType := info.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	filename := info.Filename
	if filename == "" {
		filename = info.ID + utils.GetExtensionFromMimeType(contentType)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, contentType)
	header.Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	header.Set("Cache-Control", presentation.ImmutableCacheControl)
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	header.Set("Accept-Ranges", "bytes")

	return contentType
}

func blobError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	case errors.Is(err, blobstore.ErrBlobNotFound):
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusNotFound)
	default:
		c.Response().Header().Set(presentation.ReasonTag, "storage unavailable")

		return c.NoContent(http.StatusInternalServerError)
	}
}
