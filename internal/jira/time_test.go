package jira

import (
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // formatted back with layoutSeconds, "" means nil
	}{
		{"plain seconds", "2024-01-10T09:30:00", "2024-01-10T09:30:00"},
		{"fractional seconds truncated", "2024-01-10T09:30:00.123", "2024-01-10T09:30:00"},
		{"utc marker stripped", "2024-01-10T09:30:00.000Z", "2024-01-10T09:30:00"},
		{"offset suffix ignored", "2024-01-10T09:30:00.123+0100", "2024-01-10T09:30:00"},
		{"surrounding whitespace", " 2024-01-10T09:30:00 ", "2024-01-10T09:30:00"},
		{"empty", "", ""},
		{"date only", "2024-01-10", ""},
		{"free text", "not a timestamp at all", ""},
		{"month out of range", "2024-13-10T09:30:00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTime(tt.in)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("ParseTime(%q) = %v, want nil", tt.in, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseTime(%q) = nil, want %s", tt.in, tt.want)
			}
			if f := got.Format(layoutSeconds); f != tt.want {
				t.Errorf("ParseTime(%q) = %s, want %s", tt.in, f, tt.want)
			}
		})
	}
}
