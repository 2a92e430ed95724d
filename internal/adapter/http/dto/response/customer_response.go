package response

import (
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"
)

type PermitResponse struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type CustomerResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	PostalCode    string           `json:"postal_code"`
	FullAddress   string           `json:"full_address"`
	PropertyType  string           `json:"property_type,omitempty"`
	PropertySize  int              `json:"property_size,omitempty"`
	LotSize       int              `json:"lot_size,omitempty"`
	YearBuilt     int              `json:"year_built,omitempty"`
	Bedrooms      int              `json:"bedrooms,omitempty"`
	Bathrooms     float64          `json:"bathrooms,omitempty"`
	RecentPermits []PermitResponse `json:"recent_permits,omitempty"`
	Zones         int              `json:"zones,omitempty"`
	UploadID      string           `json:"upload_id"`
	UploadName    string           `json:"upload_name"`
	Deleted       bool             `json:"deleted"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	res := CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
		FullAddress:  c.FullAddress,
		PropertyType: c.Property.PropertyType,
		PropertySize: c.Property.SquareFeet,
		LotSize:      c.Property.LotSizeSqFt,
		YearBuilt:    c.Property.YearBuilt,
		Bedrooms:     c.Property.Bedrooms,
		Bathrooms:    c.Property.Bathrooms,
		UploadID:     c.BatchID,
		UploadName:   entities.BatchDisplayName(c.BatchID),
		Deleted:      c.Deleted,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, p := range c.Property.RecentPermits {
		res.RecentPermits = append(res.RecentPermits, PermitResponse{
			Date:        p.Date.Format(time.DateOnly),
			Type:        p.Type,
			Description: p.Description,
			Value:       p.Value,
		})
	}
	return res
}

func FromCustomerView(v usecase.CustomerView) CustomerResponse {
	res := FromCustomer(v.Customer)
	res.Zones = v.Zones
	return res
}

func FromCustomerViews(views []usecase.CustomerView) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCustomerView(v))
	}
	return out
}
