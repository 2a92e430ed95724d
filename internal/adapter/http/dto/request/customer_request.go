package request

import (
	"strings"

	"servicescale/internal/usecase"
)

type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

func (r CreateCustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:       strings.TrimSpace(r.Name),
		Email:      strings.TrimSpace(r.Email),
		Address:    strings.TrimSpace(r.Address),
		City:       strings.TrimSpace(r.City),
		State:      strings.TrimSpace(r.State),
		PostalCode: strings.TrimSpace(r.PostalCode),
	}
}

// UpdateCustomerRequest is a partial update; omitted fields are left untouched.
type UpdateCustomerRequest struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	PostalCode   *string  `json:"postal_code"`
	PropertyType *string  `json:"property_type"`
	SquareFeet   *int     `json:"property_size"`
	YearBuilt    *int     `json:"year_built"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
}

func (r UpdateCustomerRequest) ToPatch() usecase.CustomerPatch {
	return usecase.CustomerPatch{
		Name:         r.Name,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		PropertyType: r.PropertyType,
		SquareFeet:   r.SquareFeet,
		YearBuilt:    r.YearBuilt,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
	}
}

// CustomerIDsRequest selects customers for a batch operation.
type CustomerIDsRequest struct {
	CustomerIDs []string `json:"customer_ids" binding:"required,min=1"`
}

// IDs returns the trimmed, non-blank ids in request order.
func (r CustomerIDsRequest) IDs() []string {
	out := make([]string, 0, len(r.CustomerIDs))
	for _, id := range r.CustomerIDs {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// SelectBatchRequest sets the batch a collection view is narrowed to.
// An empty BatchID clears the selection.
type SelectBatchRequest struct {
	BatchID string `json:"batch_id"`
}
