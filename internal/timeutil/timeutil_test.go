package timeutil

import "testing"

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-03-15" {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestCompactDate(t *testing.T) {
	if got := CompactDate("2024-03-15"); got != "20240315" {
		t.Fatalf("expected 20240315, got %s", got)
	}
	if got := CompactDate("not-a-date"); got != "notadate" {
		t.Fatalf("expected hyphens stripped, got %s", got)
	}
}

func TestSeasonLabel(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2024-10-01", "2024-25"},
		{"2024-12-31", "2024-25"},
		{"2025-01-01", "2024-25"},
		{"2025-09-30", "2024-25"},
		{"2025-10-15", "2025-26"},
		{"2024-03-15", "2023-24"},
	}
	for _, tt := range tests {
		ref, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.date, err)
		}
		if got := SeasonLabel(ref); got != tt.expected {
			t.Fatalf("SeasonLabel(%s) = %s, want %s", tt.date, got, tt.expected)
		}
	}
}
