package handlers

import (
	"net/http"
	"strings"

	request "servicescale/internal/adapter/http/dto/request"
	response "servicescale/internal/adapter/http/dto/response"
	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PricebookHandler struct {
	usecase usecase.IPricebookUseCase
	uploads usecase.IUploadUseCase
}

func NewPricebookHandler(uc usecase.IPricebookUseCase, uploads usecase.IUploadUseCase) *PricebookHandler {
	return &PricebookHandler{usecase: uc, uploads: uploads}
}

// ListEntries godoc
// @Summary  List pricebook entries, newest first
// @Tags     pricebook
// @Produce  json
// @Param    include_deleted query bool false "include soft-deleted entries"
// @Success  200 {array} response.PricebookEntryResponse
// @Security Bearer
// @Router   /pricebook [get]
func (h *PricebookHandler) ListEntries(c *gin.Context) {
	includeDeleted, err := queryBool(c, "include_deleted")
	if err != nil {
		writeAppError(c, errInvalidQuery)
		return
	}
	entries, err := h.usecase.Entries(c.Request.Context(), includeDeleted)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricebookEntries(entries))
}

// CreateEntry godoc
// @Summary  Add a pricebook entry by hand
// @Tags     pricebook
// @Accept   json
// @Produce  json
// @Param    payload body request.CreatePricebookEntryRequest true "entry"
// @Success  201 {object} response.PricebookEntryResponse
// @Security Bearer
// @Router   /pricebook [post]
func (h *PricebookHandler) CreateEntry(c *gin.Context) {
	var payload request.CreatePricebookEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	entry, err := h.usecase.CreateManual(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPricebookEntry(entry))
}

// GetEntry godoc
// @Summary  Get a pricebook entry
// @Tags     pricebook
// @Produce  json
// @Param    id path string true "entry id"
// @Success  200 {object} response.PricebookEntryResponse
// @Security Bearer
// @Router   /pricebook/{id} [get]
func (h *PricebookHandler) GetEntry(c *gin.Context) {
	entry, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricebookEntry(entry))
}

// UpdateEntry godoc
// @Summary  Edit a pricebook entry
// @Tags     pricebook
// @Accept   json
// @Produce  json
// @Param    id      path string                              true "entry id"
// @Param    payload body request.UpdatePricebookEntryRequest true "fields to change"
// @Success  200 {object} response.PricebookEntryResponse
// @Security Bearer
// @Router   /pricebook/{id} [patch]
func (h *PricebookHandler) UpdateEntry(c *gin.Context) {
	var payload request.UpdatePricebookEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricebookEntry(entry))
}

func (h *PricebookHandler) DeleteEntry(c *gin.Context) {
	entry, err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricebookEntry(entry))
}

func (h *PricebookHandler) RestoreEntry(c *gin.Context) {
	entry, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricebookEntry(entry))
}

func (h *PricebookHandler) ListBatches(c *gin.Context) {
	ctx := c.Request.Context()
	batches, err := h.usecase.Batches(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BatchesResponse{Batches: batches, Selected: h.usecase.SelectedBatch(ctx)})
}

func (h *PricebookHandler) SelectBatch(c *gin.Context) {
	var payload request.SelectBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.SelectBatch(c.Request.Context(), strings.TrimSpace(payload.BatchID)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PricebookHandler) RemoveBatch(c *gin.Context) {
	n, err := h.uploads.RemoveBatch(c.Request.Context(), entities.UploadKindPricebook, c.Param("batch_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RemovedResponse{Removed: n})
}
