package models

import (
	"encoding/json"
	"testing"
)

func TestDisplayPriceHidden(t *testing.T) {
	price := 350000.0

	hidden := Product{Price: &price, ShowPrice: false}
	if got := hidden.DisplayPrice(); got != ContactForQuote {
		t.Errorf("hidden price rendered %q, want %q", got, ContactForQuote)
	}

	missing := Product{ShowPrice: true}
	if got := missing.DisplayPrice(); got != ContactForQuote {
		t.Errorf("missing price rendered %q, want %q", got, ContactForQuote)
	}

	shown := Product{Price: &price, ShowPrice: true}
	if got := shown.DisplayPrice(); got != "350000" {
		t.Errorf("shown price rendered %q, want 350000", got)
	}
}

func TestEncodeSpecsOmitsEmptyFields(t *testing.T) {
	raw := EncodeSpecs(SpecFields{Surface: "Bóng", Dimensions: "600x600"})

	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("specs are not valid JSON: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 keys, got %v", m)
	}
	if m["surface"] != "Bóng" || m["dimensions"] != "600x600" {
		t.Errorf("unexpected specs %v", m)
	}
	if _, ok := m["origin"]; ok {
		t.Error("empty field stored as empty string")
	}
}

func TestSpecsMapTolerant(t *testing.T) {
	broken := Product{Specs: "{not json"}
	if m := broken.SpecsMap(); len(m) != 0 {
		t.Errorf("broken specs decoded to %v, want empty map", m)
	}

	empty := Product{}
	if m := empty.SpecsMap(); len(m) != 0 {
		t.Errorf("empty specs decoded to %v, want empty map", m)
	}
}

func TestApplySpecsPromotesColumns(t *testing.T) {
	var p Product
	p.ApplySpecs(SpecFields{Surface: "Nhám", Color: "Xám", AntiSlip: "R10"})

	if p.Surface != "Nhám" || p.ColorName != "Xám" || p.AntiSlip != "R10" {
		t.Error("promoted columns not written")
	}
	m := p.SpecsMap()
	if m["surface"] != "Nhám" || m["color"] != "Xám" || m["antiSlip"] != "R10" {
		t.Errorf("specs JSON missing promoted values: %v", m)
	}
}
