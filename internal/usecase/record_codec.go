package usecase

import (
	"encoding/json"
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Table names used in the record store.
const (
	TableCustomers        = "customers"
	TablePricebookEntries = "pricebook_entries"
	TableUploads          = "uploads"
	TableQuotes           = "quotes"
	TableTemplates        = "templates"
)

// Structured values (permits, template sections, property snapshots) are
// stored as JSON text so every backend sees plain scalar columns.
func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func decodeJSON(s string, v any) {
	if s == "" {
		return
	}
	_ = json.Unmarshal([]byte(s), v)
}

func parseDecimal(r interfaces.Record, key string) decimal.Decimal {
	if d, err := decimal.NewFromString(r.String(key)); err == nil {
		return d
	}
	return decimal.NewFromFloat(r.Float(key))
}

func customerToRecord(c entities.Customer) interfaces.Record {
	permits := ""
	if len(c.Property.RecentPermits) > 0 {
		permits = encodeJSON(c.Property.RecentPermits)
	}
	return interfaces.Record{
		columnID:         c.ID,
		columnOwnerID:    c.OwnerID,
		"name":           c.Name,
		"email":          c.Email,
		"address":        c.Address,
		"city":           c.City,
		"state":          c.State,
		"postal_code":    c.PostalCode,
		"full_address":   c.FullAddress,
		"property_type":  c.Property.PropertyType,
		"property_size":  c.Property.SquareFeet,
		"lot_size":       c.Property.LotSizeSqFt,
		"year_built":     c.Property.YearBuilt,
		"bedrooms":       c.Property.Bedrooms,
		"bathrooms":      c.Property.Bathrooms,
		"recent_permits": permits,
		columnBatchID:    c.BatchID,
		columnDeleted:    c.Deleted,
		columnCreatedAt:  interfaces.FormatTimestamp(c.CreatedAt),
		columnUpdatedAt:  interfaces.FormatTimestamp(c.UpdatedAt),
	}
}

func customerFromRecord(r interfaces.Record) entities.Customer {
	c := entities.Customer{
		ID:          r.String(columnID),
		OwnerID:     r.String(columnOwnerID),
		Name:        r.String("name"),
		Email:       r.String("email"),
		Address:     r.String("address"),
		City:        r.String("city"),
		State:       r.String("state"),
		PostalCode:  r.String("postal_code"),
		FullAddress: r.String("full_address"),
		Property: entities.PropertyAttributes{
			PropertyType: r.String("property_type"),
			SquareFeet:   r.Int("property_size"),
			LotSizeSqFt:  r.Int("lot_size"),
			YearBuilt:    r.Int("year_built"),
			Bedrooms:     r.Int("bedrooms"),
			Bathrooms:    r.Float("bathrooms"),
		},
		BatchID:   r.String(columnBatchID),
		Deleted:   r.Bool(columnDeleted),
		CreatedAt: r.Time(columnCreatedAt),
		UpdatedAt: r.Time(columnUpdatedAt),
	}
	decodeJSON(r.String("recent_permits"), &c.Property.RecentPermits)
	return c
}

// propertyRecord is the partial update written after an enrichment lookup.
func propertyRecord(a entities.PropertyAttributes) interfaces.Record {
	permits := ""
	if len(a.RecentPermits) > 0 {
		permits = encodeJSON(a.RecentPermits)
	}
	return interfaces.Record{
		"property_type":  a.PropertyType,
		"property_size":  a.SquareFeet,
		"lot_size":       a.LotSizeSqFt,
		"year_built":     a.YearBuilt,
		"bedrooms":       a.Bedrooms,
		"bathrooms":      a.Bathrooms,
		"recent_permits": permits,
	}
}

var customerCodec = entityCodec[entities.Customer]{
	table:      TableCustomers,
	kind:       "customer",
	toRecord:   customerToRecord,
	fromRecord: customerFromRecord,
	id:         func(c entities.Customer) string { return c.ID },
	batchID:    func(c entities.Customer) string { return c.BatchID },
}

func pricebookEntryToRecord(e entities.PricebookEntry) interfaces.Record {
	return interfaces.Record{
		columnID:        e.ID,
		columnOwnerID:   e.OwnerID,
		"name":          e.Name,
		"price":         e.Price.String(),
		"description":   e.Description,
		columnBatchID:   e.BatchID,
		columnDeleted:   e.Deleted,
		columnCreatedAt: interfaces.FormatTimestamp(e.CreatedAt),
		columnUpdatedAt: interfaces.FormatTimestamp(e.UpdatedAt),
	}
}

func pricebookEntryFromRecord(r interfaces.Record) entities.PricebookEntry {
	return entities.PricebookEntry{
		ID:          r.String(columnID),
		OwnerID:     r.String(columnOwnerID),
		Name:        r.String("name"),
		Price:       parseDecimal(r, "price"),
		Description: r.String("description"),
		BatchID:     r.String(columnBatchID),
		Deleted:     r.Bool(columnDeleted),
		CreatedAt:   r.Time(columnCreatedAt),
		UpdatedAt:   r.Time(columnUpdatedAt),
	}
}

var pricebookCodec = entityCodec[entities.PricebookEntry]{
	table:      TablePricebookEntries,
	kind:       "pricebook entry",
	toRecord:   pricebookEntryToRecord,
	fromRecord: pricebookEntryFromRecord,
	id:         func(e entities.PricebookEntry) string { return e.ID },
	batchID:    func(e entities.PricebookEntry) string { return e.BatchID },
}

// An upload is tagged with its own id as batch, so removing the batch of an
// upload also drops the upload record from the uploads collection.
func uploadToRecord(u entities.Upload) interfaces.Record {
	return interfaces.Record{
		columnID:        u.ID,
		columnOwnerID:   u.OwnerID,
		"kind":          string(u.Kind),
		"file_name":     u.FileName,
		"row_count":     u.RowCount,
		"archive_key":   u.ArchiveKey,
		columnBatchID:   u.ID,
		columnDeleted:   u.Deleted,
		columnCreatedAt: interfaces.FormatTimestamp(u.CreatedAt),
		columnUpdatedAt: interfaces.FormatTimestamp(u.UpdatedAt),
	}
}

func uploadFromRecord(r interfaces.Record) entities.Upload {
	return entities.Upload{
		ID:         r.String(columnID),
		OwnerID:    r.String(columnOwnerID),
		Kind:       entities.UploadKind(r.String("kind")),
		FileName:   r.String("file_name"),
		RowCount:   r.Int("row_count"),
		ArchiveKey: r.String("archive_key"),
		Deleted:    r.Bool(columnDeleted),
		CreatedAt:  r.Time(columnCreatedAt),
		UpdatedAt:  r.Time(columnUpdatedAt),
	}
}

var uploadCodec = entityCodec[entities.Upload]{
	table:      TableUploads,
	kind:       "upload",
	toRecord:   uploadToRecord,
	fromRecord: uploadFromRecord,
	id:         func(u entities.Upload) string { return u.ID },
	batchID:    func(u entities.Upload) string { return u.ID },
}

func quoteToRecord(q entities.Quote) interfaces.Record {
	return interfaces.Record{
		columnID:           q.ID,
		columnOwnerID:      q.OwnerID,
		"customer_id":      q.CustomerID,
		"customer_name":    q.CustomerName,
		"status":           string(q.Status),
		"service":          q.Service,
		"total":            q.Total.String(),
		"zones":            q.Zones,
		"template_id":      q.TemplateID,
		"content":          encodeJSON(q.Content),
		"property_details": encodeJSON(q.PropertyDetails),
		columnCreatedAt:    interfaces.FormatTimestamp(q.CreatedAt),
		"sent_at":          formatOptional(q.SentAt),
		"opened_at":        formatOptional(q.OpenedAt),
		"clicked_at":       formatOptional(q.ClickedAt),
	}
}

func quoteFromRecord(r interfaces.Record) entities.Quote {
	q := entities.Quote{
		ID:           r.String(columnID),
		OwnerID:      r.String(columnOwnerID),
		CustomerID:   r.String("customer_id"),
		CustomerName: r.String("customer_name"),
		Status:       entities.QuoteStatus(r.String("status")),
		Service:      r.String("service"),
		Total:        parseDecimal(r, "total"),
		Zones:        r.Int("zones"),
		TemplateID:   r.String("template_id"),
		CreatedAt:    r.Time(columnCreatedAt),
		SentAt:       r.TimePtr("sent_at"),
		OpenedAt:     r.TimePtr("opened_at"),
		ClickedAt:    r.TimePtr("clicked_at"),
	}
	decodeJSON(r.String("content"), &q.Content)
	decodeJSON(r.String("property_details"), &q.PropertyDetails)
	if q.Content == nil {
		q.Content = []entities.TemplateSection{}
	}
	return q
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return interfaces.FormatTimestamp(*t)
}

func templateToRecord(t entities.Template) interfaces.Record {
	return interfaces.Record{
		columnID:        t.ID,
		columnOwnerID:   t.OwnerID,
		"name":          t.Name,
		"description":   t.Description,
		"is_default":    t.IsDefault,
		"sections":      encodeJSON(t.Sections),
		columnCreatedAt: interfaces.FormatTimestamp(t.CreatedAt),
		columnUpdatedAt: interfaces.FormatTimestamp(t.UpdatedAt),
	}
}

func templateFromRecord(r interfaces.Record) entities.Template {
	t := entities.Template{
		ID:          r.String(columnID),
		OwnerID:     r.String(columnOwnerID),
		Name:        r.String("name"),
		Description: r.String("description"),
		IsDefault:   r.Bool("is_default"),
		CreatedAt:   r.Time(columnCreatedAt),
		UpdatedAt:   r.Time(columnUpdatedAt),
	}
	decodeJSON(r.String("sections"), &t.Sections)
	return t
}
