package request

import (
	"strings"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"
)

type CreateTemplateRequest struct {
	Name        string                     `json:"name" binding:"required"`
	Description string                     `json:"description"`
	IsDefault   bool                       `json:"is_default"`
	Sections    []entities.TemplateSection `json:"sections"`
}

func (r CreateTemplateRequest) ToInput() usecase.TemplateInput {
	return usecase.TemplateInput{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		IsDefault:   r.IsDefault,
		Sections:    r.Sections,
	}
}
