package response

import (
	"time"

	"servicescale/internal/domain/entities"
)

type TemplateResponse struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	IsDefault   bool                       `json:"is_default"`
	Sections    []entities.TemplateSection `json:"sections"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

func FromTemplate(t entities.Template) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsDefault:   t.IsDefault,
		Sections:    t.ContentSnapshot(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTemplates(templates []entities.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, FromTemplate(t))
	}
	return out
}
