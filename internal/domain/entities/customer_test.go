package entities

import "testing"

func TestCombineAddress(t *testing.T) {
	cases := []struct {
		street, city, state, zip string
		want                     string
	}{
		{"12 Elm St", "Springfield", "IL", "62701", "12 Elm St, Springfield, IL 62701"},
		{"12 Elm St", "", "IL", "", "12 Elm St, IL"},
		{"", "", "", "62701", "62701"},
		{" 1 Main ", " Town ", " TX ", "", "1 Main, Town, TX"},
		{"", "", "", "", ""},
	}
	for _, tc := range cases {
		if got := CombineAddress(tc.street, tc.city, tc.state, tc.zip); got != tc.want {
			t.Fatalf("CombineAddress(%q,%q,%q,%q) = %q, want %q", tc.street, tc.city, tc.state, tc.zip, got, tc.want)
		}
	}
}

func TestParseQuoteStatus(t *testing.T) {
	if s, ok := ParseQuoteStatus(" Converted "); !ok || s != QuoteStatusConverted {
		t.Fatalf("expected converted, got %q %v", s, ok)
	}
	if _, ok := ParseQuoteStatus("pending"); ok {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestRuleConfigApply(t *testing.T) {
	large := 6000.0
	maxZones := 6
	got := DefaultRuleConfig().Apply(RuleConfigPatch{LargeThreshold: &large, MaxZones: &maxZones})
	if got.SizeThresholds.Large != 6000 || got.MaxZones != 6 {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.BaseZones != 1 || got.SizeThresholds.Medium != 2500 || got.BathroomThreshold != 2.5 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestTemplateContentSnapshot(t *testing.T) {
	tpl := Template{Sections: []TemplateSection{
		{ID: "b", Order: 2, Images: []TemplateImage{{ID: "img"}}},
		{ID: "a", Order: 1},
	}}
	snap := tpl.ContentSnapshot()
	if snap[0].ID != "a" || snap[1].ID != "b" {
		t.Fatalf("sections not ordered: %+v", snap)
	}
	snap[1].Images[0].ID = "changed"
	if tpl.Sections[0].Images[0].ID != "img" {
		t.Fatalf("snapshot shares image slice with template")
	}
}
