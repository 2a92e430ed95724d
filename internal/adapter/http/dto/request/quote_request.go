package request

import (
	"errors"
	"strings"

	"servicescale/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrMissingQuoteTotal = errors.New("total is required when service is set")

// CreateQuoteRequest either prices a quote from the customer's property, or,
// when Service is set, records a hand-written quote with an explicit total.
type CreateQuoteRequest struct {
	CustomerID string           `json:"customer_id" binding:"required"`
	TemplateID string           `json:"template_id"`
	Service    string           `json:"service"`
	Total      *decimal.Decimal `json:"total"`
}

func (r CreateQuoteRequest) IsManual() bool {
	return strings.TrimSpace(r.Service) != ""
}

func (r CreateQuoteRequest) ToInput() (usecase.QuoteInput, error) {
	if r.Total == nil {
		return usecase.QuoteInput{}, ErrMissingQuoteTotal
	}
	return usecase.QuoteInput{
		CustomerID: strings.TrimSpace(r.CustomerID),
		Service:    strings.TrimSpace(r.Service),
		Total:      *r.Total,
		TemplateID: strings.TrimSpace(r.TemplateID),
	}, nil
}

type GenerateQuotesRequest struct {
	CustomerIDsRequest
	TemplateID string `json:"template_id"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
