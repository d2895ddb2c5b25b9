package enums

import "testing"

func TestParseSortKey(t *testing.T) {
	for _, raw := range []string{"featured", "newest", "price-low", "price-high", "name-az"} {
		got, err := ParseSortKey(raw)
		if err != nil {
			t.Fatalf("ParseSortKey(%q) returned error: %v", raw, err)
		}
		if got.String() != raw {
			t.Fatalf("expected %q, got %q", raw, got)
		}
	}
	if _, err := ParseSortKey("price_low"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestCategoryLabels(t *testing.T) {
	if got := CategoryOuterwear.Label(); got != "Jackets & Outerwear" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := Category("socks").Label(); got != "socks" {
		t.Fatalf("unknown categories should echo their value, got %q", got)
	}
	if len(Categories()) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(Categories()))
	}
}

func TestBadgeValidity(t *testing.T) {
	if Badge("").IsValid() {
		t.Fatal("empty badge means no badge and is not a badge value")
	}
	if !BadgeLimited.IsValid() {
		t.Fatal("expected limited to be valid")
	}
}

func TestFilterDimensionIsSet(t *testing.T) {
	if !FilterDimensionColor.IsSet() || FilterDimensionSearch.IsSet() || FilterDimensionPrice.IsSet() {
		t.Fatal("unexpected IsSet classification")
	}
}

func TestParseShippingMethod(t *testing.T) {
	if m, err := ParseShippingMethod("express"); err != nil || m != ShippingMethodExpress {
		t.Fatalf("expected express, got %q err=%v", m, err)
	}
	if _, err := ParseShippingMethod("overnight"); err == nil {
		t.Fatal("expected error for unsupported method")
	}
}
