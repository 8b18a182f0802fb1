package formatting_test

import (
	"testing"

	"github.com/JaimeStill/tutela/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare bytes", "2048", 2048, false},
		{"bytes unit", "256B", 256, false},
		{"kilobytes", "4KB", 4 * 1024, false},
		{"megabytes", "25MB", 25 * 1024 * 1024, false},
		{"gigabytes", "1GB", 1024 * 1024 * 1024, false},
		{"lowercase unit", "25mb", 25 * 1024 * 1024, false},
		{"with space", "25 MB", 25 * 1024 * 1024, false},
		{"surrounding whitespace", "  25MB  ", 25 * 1024 * 1024, false},
		{"zero", "0", 0, false},
		{"empty string", "", 0, true},
		{"unknown unit", "25QB", 0, true},
		{"no number", "KB", 0, true},
		{"negative", "-1MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBytes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 900, 0, "900 B"},
		{"one KB", 1024, 0, "1 KB"},
		{"25 MB", 25 * 1024 * 1024, 0, "25 MB"},
		{"fractional MB", 2560 * 1024, 1, "2.5 MB"},
		{"one GB", 1024 * 1024 * 1024, 0, "1 GB"},
		{"negative precision clamped", 1024, -2, "1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatting.FormatBytes(tt.n, tt.precision)
			if got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseBytesFormatBytesRoundTrip(t *testing.T) {
	for _, n := range []int64{1024, 25 * 1024 * 1024, 1024 * 1024 * 1024} {
		formatted := formatting.FormatBytes(n, 0)
		parsed, err := formatting.ParseBytes(formatted)
		if err != nil {
			t.Fatalf("round-trip %d: ParseBytes(%q) error: %v", n, formatted, err)
		}
		if parsed != n {
			t.Errorf("round-trip %d became %d via %q", n, parsed, formatted)
		}
	}
}
