package handlers

import (
	"net/http"

	response "servicescale/internal/adapter/http/dto/response"
	"servicescale/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UploadHandler serves the log of confirmed imports.
type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// ListUploads godoc
// @Summary  List confirmed imports, newest first
// @Tags     uploads
// @Produce  json
// @Param    include_deleted query bool false "include soft-deleted uploads"
// @Success  200 {array} response.UploadResponse
// @Security Bearer
// @Router   /uploads [get]
func (h *UploadHandler) ListUploads(c *gin.Context) {
	includeDeleted, err := queryBool(c, "include_deleted")
	if err != nil {
		writeAppError(c, errInvalidQuery)
		return
	}
	uploads, err := h.usecase.List(c.Request.Context(), includeDeleted)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUploads(uploads))
}

// DeleteUpload godoc
// @Summary  Soft-delete an upload entry
// @Tags     uploads
// @Produce  json
// @Param    id path string true "upload id"
// @Success  200 {object} response.UploadResponse
// @Security Bearer
// @Router   /uploads/{id} [delete]
func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	u, err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUpload(u))
}

func (h *UploadHandler) RestoreUpload(c *gin.Context) {
	u, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUpload(u))
}

// PurgeUpload godoc
// @Summary  Hard-delete an upload and every record it produced
// @Tags     uploads
// @Produce  json
// @Param    id path string true "upload id"
// @Success  200 {object} response.RemovedResponse
// @Security Bearer
// @Router   /uploads/{id}/records [delete]
func (h *UploadHandler) PurgeUpload(c *gin.Context) {
	n, err := h.usecase.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RemovedResponse{Removed: n})
}
