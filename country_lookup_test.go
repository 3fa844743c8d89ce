package devcycle

import (
	"testing"
)

func TestCountryLookup(t *testing.T) {
	lookup := NewCountryLookup(IPCountryOptions{})
	if country, ok := lookup.LookupIp("24.18.183.148"); !ok || country != "US" { // Seattle, WA
		t.Errorf("Expected US, got %s", country)
	}
	if country, ok := lookup.LookupIp("115.240.90.163"); !ok || country != "IN" { // Mumbai, India
		t.Errorf("Expected IN, got %s", country)
	}
	if _, ok := lookup.LookupIp(""); ok {
		t.Errorf("Expected empty ip to be unresolved")
	}

	user, _ := NewUserBuilderWithOptions(&UserOptions{CountryResolver: lookup}).
		UserID("abc").
		CountryFromIP("24.18.183.148").
		Build()
	if user.Country == nil || *user.Country != "US" {
		t.Errorf("Expected builder to resolve US, got %v", user.Country)
	}
}

func TestCountryLookupDisabled(t *testing.T) {
	lookup := NewCountryLookup(IPCountryOptions{Disabled: true})
	if _, ok := lookup.LookupIp("24.18.183.148"); ok {
		t.Errorf("Expected lookup to fail when disabled")
	}
}

func TestCountryLookupLazyLoad(t *testing.T) {
	lookup := NewCountryLookup(IPCountryOptions{LazyLoad: true, EnsureLoaded: true})
	if country, _ := lookup.LookupIp("24.18.183.148"); country != "US" {
		t.Errorf("Expected EnsureLoaded to wait for the lookup table, got %s", country)
	}
}
