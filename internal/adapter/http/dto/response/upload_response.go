package response

import (
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"
)

type UploadResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	FileName   string    `json:"file_name"`
	RowCount   int       `json:"row_count"`
	ArchiveKey string    `json:"archive_key,omitempty"`
	Deleted    bool      `json:"deleted"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromUpload(u entities.Upload) UploadResponse {
	return UploadResponse{
		ID:         u.ID,
		Name:       entities.BatchDisplayName(u.ID),
		Kind:       string(u.Kind),
		FileName:   u.FileName,
		RowCount:   u.RowCount,
		ArchiveKey: u.ArchiveKey,
		Deleted:    u.Deleted,
		CreatedAt:  u.CreatedAt,
	}
}

func FromUploads(uploads []entities.Upload) []UploadResponse {
	out := make([]UploadResponse, 0, len(uploads))
	for _, u := range uploads {
		out = append(out, FromUpload(u))
	}
	return out
}

// BatchesResponse lists the batches of a collection and the one currently selected.
type BatchesResponse struct {
	Batches  []usecase.BatchSummary `json:"batches"`
	Selected string                 `json:"selected,omitempty"`
}

type RemovedResponse struct {
	Removed int `json:"removed"`
}
