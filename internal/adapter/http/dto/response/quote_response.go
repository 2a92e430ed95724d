package response

import (
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"
)

type QuoteResponse struct {
	ID              string                     `json:"id"`
	CustomerID      string                     `json:"customer_id"`
	CustomerName    string                     `json:"customer_name"`
	Status          string                     `json:"status"`
	Service         string                     `json:"service"`
	Total           string                     `json:"total"`
	Zones           int                        `json:"zones"`
	TemplateID      string                     `json:"template_id,omitempty"`
	Content         []entities.TemplateSection `json:"content"`
	PropertyDetails entities.PropertyDetails   `json:"property_details"`
	CreatedAt       time.Time                  `json:"created_at"`
	SentAt          *time.Time                 `json:"sent_at,omitempty"`
	OpenedAt        *time.Time                 `json:"opened_at,omitempty"`
	ClickedAt       *time.Time                 `json:"clicked_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	content := q.Content
	if content == nil {
		content = []entities.TemplateSection{}
	}
	return QuoteResponse{
		ID:              q.ID,
		CustomerID:      q.CustomerID,
		CustomerName:    q.CustomerName,
		Status:          string(q.Status),
		Service:         q.Service,
		Total:           q.Total.StringFixed(2),
		Zones:           q.Zones,
		TemplateID:      q.TemplateID,
		Content:         content,
		PropertyDetails: q.PropertyDetails,
		CreatedAt:       q.CreatedAt,
		SentAt:          q.SentAt,
		OpenedAt:        q.OpenedAt,
		ClickedAt:       q.ClickedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteStatsResponse struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	TotalValue     string         `json:"total_value"`
	ConvertedValue string         `json:"converted_value"`
	ConversionRate float64        `json:"conversion_rate"`
}

// FromQuoteStats reports every known status, including those with no quotes.
func FromQuoteStats(s usecase.QuoteStats) QuoteStatsResponse {
	byStatus := make(map[string]int, len(entities.QuoteStatuses()))
	for _, st := range entities.QuoteStatuses() {
		byStatus[string(st)] = s.ByStatus[st]
	}
	return QuoteStatsResponse{
		Total:          s.Total,
		ByStatus:       byStatus,
		TotalValue:     s.TotalValue.StringFixed(2),
		ConvertedValue: s.ConvertedValue.StringFixed(2),
		ConversionRate: s.ConversionRate,
	}
}
