package request

import (
	"strings"

	"servicescale/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreatePricebookEntryRequest accepts the price as a JSON number or a decimal string.
type CreatePricebookEntryRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

func (r CreatePricebookEntryRequest) ToInput() usecase.PricebookEntryInput {
	return usecase.PricebookEntryInput{
		Name:        strings.TrimSpace(r.Name),
		Price:       r.Price,
		Description: strings.TrimSpace(r.Description),
	}
}

type UpdatePricebookEntryRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

func (r UpdatePricebookEntryRequest) ToPatch() usecase.PricebookEntryPatch {
	return usecase.PricebookEntryPatch{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
	}
}
