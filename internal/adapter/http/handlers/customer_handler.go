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

// CustomerHandler serves the customer collection and its enrichment.
type CustomerHandler struct {
	usecase    usecase.ICustomerUseCase
	enrichment usecase.IEnrichmentUseCase
	uploads    usecase.IUploadUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, enrichment usecase.IEnrichmentUseCase, uploads usecase.IUploadUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc, enrichment: enrichment, uploads: uploads}
}

// ListCustomers godoc
// @Summary  List customers with their zone counts
// @Tags     customers
// @Produce  json
// @Param    search           query string false "free-text search"
// @Param    upload_id        query string false "batch id"
// @Param    property_type    query string false "property type"
// @Param    city             query string false "city"
// @Param    state            query string false "state"
// @Param    year_built       query int    false "year built"
// @Param    zones            query int    false "zone count"
// @Param    include_deleted  query bool   false "include soft-deleted customers"
// @Success  200 {array} response.CustomerResponse
// @Security Bearer
// @Router   /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	includeDeleted, err := queryBool(c, "include_deleted")
	if err != nil {
		writeAppError(c, errInvalidQuery)
		return
	}
	yearBuilt, err := queryInt(c, "year_built")
	if err != nil {
		writeAppError(c, errInvalidQuery)
		return
	}
	zones, err := queryInt(c, "zones")
	if err != nil {
		writeAppError(c, errInvalidQuery)
		return
	}

	views, err := h.usecase.List(c.Request.Context(), usecase.CustomerFilter{
		Search:         strings.TrimSpace(c.Query("search")),
		BatchID:        strings.TrimSpace(c.Query("upload_id")),
		PropertyType:   strings.TrimSpace(c.Query("property_type")),
		City:           strings.TrimSpace(c.Query("city")),
		State:          strings.TrimSpace(c.Query("state")),
		YearBuilt:      yearBuilt,
		Zones:          zones,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerViews(views))
}

// CreateCustomer godoc
// @Summary  Add a customer by hand
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateCustomerRequest true "customer"
// @Success  201 {object} response.CustomerResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	customer, err := h.usecase.CreateManual(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// GetCustomer godoc
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id path string true "customer id"
// @Success  200 {object} response.CustomerResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// UpdateCustomer godoc
// @Summary  Edit a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id      path string                        true "customer id"
// @Param    payload body request.UpdateCustomerRequest true "fields to change"
// @Success  200 {object} response.CustomerResponse
// @Security Bearer
// @Router   /customers/{id} [patch]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// DeleteCustomer godoc
// @Summary  Soft-delete a customer
// @Tags     customers
// @Produce  json
// @Param    id path string true "customer id"
// @Success  200 {object} response.CustomerResponse
// @Security Bearer
// @Router   /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customer, err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// RestoreCustomer godoc
// @Summary  Restore a soft-deleted customer
// @Tags     customers
// @Produce  json
// @Param    id path string true "customer id"
// @Success  200 {object} response.CustomerResponse
// @Security Bearer
// @Router   /customers/{id}/restore [post]
func (h *CustomerHandler) RestoreCustomer(c *gin.Context) {
	customer, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ListBatches godoc
// @Summary  List the import batches present in the customer collection
// @Tags     customers
// @Produce  json
// @Success  200 {object} response.BatchesResponse
// @Security Bearer
// @Router   /customers/batches [get]
func (h *CustomerHandler) ListBatches(c *gin.Context) {
	ctx := c.Request.Context()
	batches, err := h.usecase.Batches(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BatchesResponse{Batches: batches, Selected: h.usecase.SelectedBatch(ctx)})
}

// SelectBatch godoc
// @Summary  Narrow the customer view to one batch
// @Tags     customers
// @Accept   json
// @Param    payload body request.SelectBatchRequest true "batch id, empty to clear"
// @Success  204
// @Security Bearer
// @Router   /customers/batches/selected [put]
func (h *CustomerHandler) SelectBatch(c *gin.Context) {
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

// RemoveBatch godoc
// @Summary  Hard-delete every customer of a batch and its upload
// @Tags     customers
// @Produce  json
// @Param    batch_id path string true "batch id"
// @Success  200 {object} response.RemovedResponse
// @Security Bearer
// @Router   /customers/batches/{batch_id} [delete]
func (h *CustomerHandler) RemoveBatch(c *gin.Context) {
	n, err := h.uploads.RemoveBatch(c.Request.Context(), entities.UploadKindCustomers, c.Param("batch_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RemovedResponse{Removed: n})
}

// EnrichCustomers godoc
// @Summary  Look up property data for the given customers
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    payload body request.CustomerIDsRequest true "customers to enrich"
// @Success  200 {object} usecase.BatchResult
// @Security Bearer
// @Router   /customers/enrich [post]
func (h *CustomerHandler) EnrichCustomers(c *gin.Context) {
	var payload request.CustomerIDsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	c.JSON(http.StatusOK, h.enrichment.EnrichCustomers(c.Request.Context(), payload.IDs()))
}
