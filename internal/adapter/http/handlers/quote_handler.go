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

// QuoteHandler serves quote assembly, tracking and reporting.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary  Create a quote for a customer
// @Description Without a service the quote is priced from the customer's property.
// @Description With a service and total it is recorded as written.
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateQuoteRequest true "quote"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	var (
		quote entities.Quote
		err   error
	)
	if payload.IsManual() {
		in, convErr := payload.ToInput()
		if convErr != nil {
			writeAppError(c, errInvalidPayload.WithDetails(convErr.Error()))
			return
		}
		quote, err = h.usecase.CreateQuote(c.Request.Context(), in)
	} else {
		quote, err = h.usecase.CreateFromCustomer(c.Request.Context(),
			strings.TrimSpace(payload.CustomerID), strings.TrimSpace(payload.TemplateID))
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GenerateQuotes godoc
// @Summary  Generate quotes for several customers
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.GenerateQuotesRequest true "customers and optional template"
// @Success  200 {object} usecase.BatchResult
// @Security Bearer
// @Router   /quotes/generate [post]
func (h *QuoteHandler) GenerateQuotes(c *gin.Context) {
	var payload request.GenerateQuotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	res := h.usecase.GenerateQuotes(c.Request.Context(), payload.IDs(), strings.TrimSpace(payload.TemplateID))
	c.JSON(http.StatusOK, res)
}

// ListQuotes godoc
// @Summary  List quotes, newest first
// @Tags     quotes
// @Produce  json
// @Success  200 {array} response.QuoteResponse
// @Security Bearer
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuoteStatus godoc
// @Summary  Set a quote's status
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path string                           true "quote id"
// @Param    payload body request.UpdateQuoteStatusRequest true "active, converted or lost"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) MarkQuoteSent(c *gin.Context) {
	quote, err := h.usecase.MarkSent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// TrackQuoteView records that the customer opened the quote link.
func (h *QuoteHandler) TrackQuoteView(c *gin.Context) {
	quote, err := h.usecase.TrackView(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QuoteStats godoc
// @Summary  Quote counts, value and conversion rate
// @Tags     quotes
// @Produce  json
// @Success  200 {object} response.QuoteStatsResponse
// @Security Bearer
// @Router   /quotes/stats [get]
func (h *QuoteHandler) QuoteStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteStats(stats))
}
