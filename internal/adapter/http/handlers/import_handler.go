package handlers

import (
	"io"
	"net/http"
	"strings"

	request "servicescale/internal/adapter/http/dto/request"
	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"
	"servicescale/pkg"

	"github.com/gin-gonic/gin"
)

const maxImportFileBytes = 10 << 20

var (
	errMissingImportFile = pkg.NewDomainErrorSimple("INVALID_REQUEST", "A CSV file is required in the 'file' field", http.StatusBadRequest)
	errImportFileTooBig  = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "The file exceeds the 10 MiB import limit", http.StatusRequestEntityTooLarge)
)

// ImportHandler drives the two-step CSV import.
type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// SniffImport godoc
// @Summary  Upload a CSV and get its headers for column mapping
// @Tags     imports
// @Accept   multipart/form-data
// @Produce  json
// @Param    kind formData string true "customers or pricebook"
// @Param    file formData file   true "CSV file"
// @Success  201 {object} usecase.ImportPreview
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /imports [post]
func (h *ImportHandler) SniffImport(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeAppError(c, errMissingImportFile)
		return
	}
	if fh.Size > maxImportFileBytes {
		writeAppError(c, errImportFileTooBig)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeAppError(c, errMissingImportFile)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxImportFileBytes+1))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(content) > maxImportFileBytes {
		writeAppError(c, errImportFileTooBig)
		return
	}

	kind := entities.UploadKind(strings.ToLower(strings.TrimSpace(c.PostForm("kind"))))
	preview, err := h.usecase.Sniff(c.Request.Context(), kind, fh.Filename, content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, preview)
}

// ConfirmImport godoc
// @Summary  Apply a column mapping and commit the import
// @Tags     imports
// @Accept   json
// @Produce  json
// @Param    session_id path string                       true "import session id"
// @Param    payload    body request.ConfirmImportRequest true "field to header mapping"
// @Success  201 {object} usecase.ImportResult
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /imports/{session_id}/confirm [post]
func (h *ImportHandler) ConfirmImport(c *gin.Context) {
	var payload request.ConfirmImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	res, err := h.usecase.Confirm(c.Request.Context(), c.Param("session_id"), payload.ToMapping())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// CancelImport godoc
// @Summary  Abandon an import session
// @Tags     imports
// @Param    session_id path string true "import session id"
// @Success  204
// @Security Bearer
// @Router   /imports/{session_id} [delete]
func (h *ImportHandler) CancelImport(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("session_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
