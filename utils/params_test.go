package utils

import (
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/api/itineraries", 1, 10},
		{"/api/itineraries?page=3&limit=5", 3, 5},
		{"/api/itineraries?page=0&limit=-2", 1, 10},
		{"/api/itineraries?page=abc&limit=xyz", 1, 10},
	}

	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		page, limit := ParsePagination(r, 10)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("%s: got page=%d limit=%d, want page=%d limit=%d", tc.url, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}

	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestRegexQuotesMetaCharacters(t *testing.T) {
	m := Regex("goa (india)")
	if m["$options"] != "i" {
		t.Fatalf("expected case-insensitive option, got %v", m)
	}
	if m["$regex"] != `goa \(india\)` {
		t.Fatalf("expected quoted pattern, got %v", m["$regex"])
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"beach", []string{"beach"}},
		{"Beach, LUXURY ,beach", []string{"beach", "luxury"}},
		{" , ,", nil},
	}

	for _, tc := range cases {
		got := SplitTags(tc.input)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
