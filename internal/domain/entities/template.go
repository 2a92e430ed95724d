package entities

import (
	"sort"
	"strings"
	"time"
)

type SectionSettings struct {
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	Layout          string `json:"layout,omitempty"`
}

type TemplateImage struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type TemplateSection struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Images   []TemplateImage `json:"images"`
	Order    int             `json:"order"`
	Settings SectionSettings `json:"settings"`
}

// Template is the quote layout produced by the template editor.
type Template struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"owner_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	IsDefault   bool              `json:"is_default"`
	Sections    []TemplateSection `json:"sections"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ContentSnapshot returns a deep copy of the sections sorted by Order.
func (t Template) ContentSnapshot() []TemplateSection {
	out := make([]TemplateSection, len(t.Sections))
	for i, s := range t.Sections {
		s.Images = append([]TemplateImage(nil), s.Images...)
		out[i] = s
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
