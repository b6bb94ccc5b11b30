package cli

import (
	"testing"

	"github.com/habitkit/habitkit/internal/models"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Category
		wantErr bool
	}{
		{"health", models.CategoryHealth, false},
		{"  Productivity ", models.CategoryProductivity, false},
		{"CREATIVE", models.CategoryCreative, false},
		{"mindfulness", models.CategoryMindfulness, false},
		{"other", models.CategoryOther, false},
		{"fitness", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{65, "1m05s"},
		{3600, "1h00m00s"},
		{3725, "1h02m05s"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
