package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/southtrails/tours-api/internal/api/metrics"
	"github.com/southtrails/tours-api/internal/infrastructure/storage"
)

// maxUploadFiles caps how many files one request may carry.
const maxUploadFiles = 10

// UploadHandler accepts multipart uploads for package and vehicle imagery.
type UploadHandler struct {
	store *storage.LocalStore
}

func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

type uploadResponse struct {
	Files []storage.StoredFile `json:"files"`
}

// Upload stores up to ten files from the "files" multipart field.
//
// @Summary      Upload files
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files  formData  file  true  "Files to upload"
// @Success      201    {object}  uploadResponse
// @Failure      400    {object}  errorResponse
// @Failure      413    {object}  errorResponse
// @Failure      415    {object}  errorResponse
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no files provided")
	}
	if len(files) > maxUploadFiles {
		return echo.NewHTTPError(http.StatusBadRequest, "too many files")
	}

	stored := make([]storage.StoredFile, 0, len(files))
	for _, fh := range files {
		sf, err := h.store.Save(fh)
		if err != nil {
			if errors.Is(err, storage.ErrFileTooLarge) {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
			}
			if errors.Is(err, storage.ErrUnsupportedType) {
				return echo.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
			}
			return err
		}
		metrics.UploadsStoredTotal.WithLabelValues(sf.MimeType).Inc()
		metrics.UploadBytesTotal.Add(float64(sf.Size))
		stored = append(stored, *sf)
	}

	return c.JSON(http.StatusCreated, uploadResponse{Files: stored})
}
