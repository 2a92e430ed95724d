package request

import (
	"strings"

	"servicescale/internal/usecase"
)

// ConfirmImportRequest carries the user's mapping of canonical fields to file headers.
type ConfirmImportRequest struct {
	Mapping map[string]string `json:"mapping" binding:"required"`
}

// ToMapping drops blank targets so an unmapped field reads as absent.
func (r ConfirmImportRequest) ToMapping() usecase.ColumnMapping {
	m := make(usecase.ColumnMapping, len(r.Mapping))
	for field, header := range r.Mapping {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" || strings.TrimSpace(header) == "" {
			continue
		}
		m[field] = header
	}
	return m
}
