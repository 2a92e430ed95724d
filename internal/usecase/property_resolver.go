package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"servicescale/internal/domain/entities"
)

// PropertyResolver derives property attributes for a customer. It reports
// false when it has nothing to offer.
type PropertyResolver interface {
	Resolve(c entities.Customer) (entities.PropertyAttributes, bool)
}

// StructuredResolver returns the enrichment fields stored on the customer.
type StructuredResolver struct{}

func (StructuredResolver) Resolve(c entities.Customer) (entities.PropertyAttributes, bool) {
	if c.Property.IsZero() {
		return entities.PropertyAttributes{}, false
	}
	return c.Property, true
}

var (
	hintSizeRe  = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+|\d+)\s*(?:sq\.?\s*ft|sqft|square\s+f(?:ee|oo)t)`)
	hintYearRe  = regexp.MustCompile(`(?i)\bbuilt\s*(?:in\s*)?:?\s*((?:18|19|20)\d{2})\b`)
	hintBedsRe  = regexp.MustCompile(`(?i)\b(\d+)\s*(?:bedrooms?|beds?|bds?|br)\b`)
	hintBathsRe = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:bathrooms?|baths?|ba)\b`)

	// House number opening the street line, as in "100 Bath Rd".
	houseNumberRe = regexp.MustCompile(`^\s*\d+[A-Za-z]?\s`)
)

// Longer names first so "multi-family" is not read as "family".
var hintPropertyTypes = []struct{ keyword, name string }{
	{"single family", "Single Family"},
	{"single-family", "Single Family"},
	{"multi family", "Multi Family"},
	{"multi-family", "Multi Family"},
	{"townhouse", "Townhouse"},
	{"townhome", "Townhouse"},
	{"condominium", "Condo"},
	{"condo", "Condo"},
	{"duplex", "Duplex"},
	{"mobile home", "Mobile Home"},
	{"apartment", "Apartment"},
}

// LegacyHintResolver reads property hints typed into the address text, such as
// "12 Elm St, 2,400 sqft, built 1995, 3 beds 2.5 baths".
type LegacyHintResolver struct{}

func (LegacyHintResolver) Resolve(c entities.Customer) (entities.PropertyAttributes, bool) {
	text := c.FullAddress
	if text == "" {
		text = entities.CombineAddress(c.Address, c.City, c.State, c.PostalCode)
	}
	a := ParseAddressHints(text)
	return a, !a.IsZero()
}

// ParseAddressHints extracts whatever attributes the free text mentions.
func ParseAddressHints(text string) entities.PropertyAttributes {
	var a entities.PropertyAttributes
	skip := len(houseNumberRe.FindString(text))
	if v, ok := firstHint(hintSizeRe, text, skip); ok {
		a.SquareFeet, _ = strconv.Atoi(strings.ReplaceAll(v, ",", ""))
	}
	if m := hintYearRe.FindStringSubmatch(text); m != nil {
		a.YearBuilt, _ = strconv.Atoi(m[1])
	}
	if v, ok := firstHint(hintBedsRe, text, skip); ok {
		a.Bedrooms, _ = strconv.Atoi(v)
	}
	if v, ok := firstHint(hintBathsRe, text, skip); ok {
		a.Bathrooms, _ = strconv.ParseFloat(v, 64)
	}
	lower := strings.ToLower(text)
	for _, pt := range hintPropertyTypes {
		if strings.Contains(lower, pt.keyword) {
			a.PropertyType = pt.name
			break
		}
	}
	return a
}

// firstHint returns the first capture of re that does not start before skip.
func firstHint(re *regexp.Regexp, text string, skip int) (string, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if m[0] < skip {
			continue
		}
		return text[m[2]:m[3]], true
	}
	return "", false
}

// ChainResolver asks each resolver in turn and returns the first answer.
type ChainResolver []PropertyResolver

func (ch ChainResolver) Resolve(c entities.Customer) (entities.PropertyAttributes, bool) {
	for _, r := range ch {
		if a, ok := r.Resolve(c); ok {
			return a, true
		}
	}
	return entities.PropertyAttributes{}, false
}

// DefaultPropertyResolver prefers enrichment data and falls back to address hints.
func DefaultPropertyResolver() PropertyResolver {
	return ChainResolver{StructuredResolver{}, LegacyHintResolver{}}
}
