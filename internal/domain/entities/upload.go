package entities

import "time"

type UploadKind string

const (
	UploadKindCustomers UploadKind = "customers"
	UploadKindPricebook UploadKind = "pricebook"
)

func (k UploadKind) Valid() bool {
	return k == UploadKindCustomers || k == UploadKindPricebook
}

// Upload records one confirmed import. Its ID is the batch id carried by every
// record the import produced.
type Upload struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"owner_id"`
	Kind       UploadKind `json:"kind"`
	FileName   string     `json:"file_name"`
	RowCount   int        `json:"row_count"`
	ArchiveKey string     `json:"archive_key,omitempty"`
	Deleted    bool       `json:"deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
