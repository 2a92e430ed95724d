package response

import (
	"time"

	"servicescale/internal/domain/entities"
)

// PricebookEntryResponse renders the price as a two-decimal string.
type PricebookEntryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	UploadID    string    `json:"upload_id"`
	UploadName  string    `json:"upload_name"`
	Deleted     bool      `json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromPricebookEntry(e entities.PricebookEntry) PricebookEntryResponse {
	return PricebookEntryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Price:       e.Price.StringFixed(2),
		Description: e.Description,
		UploadID:    e.BatchID,
		UploadName:  entities.BatchDisplayName(e.BatchID),
		Deleted:     e.Deleted,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromPricebookEntries(entries []entities.PricebookEntry) []PricebookEntryResponse {
	out := make([]PricebookEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromPricebookEntry(e))
	}
	return out
}
