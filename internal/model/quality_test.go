package model

import (
	"testing"
)

func TestParseQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     Quality
		wantMult float64
		wantErr  bool
	}{
		{"normal", "Normal", QualityNormal, 1.0, false},
		{"superior", "Superior", QualitySuperior, 1.25, false},
		{"flawless", "Flawless", QualityFlawless, 1.5, false},
		{"epic", "Epic", QualityEpic, 2.0, false},
		{"legendary", "Legendary", QualityLegendary, 3.0, false},
		{"unknown", "Mythic", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"lowercase is not accepted", "epic", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := ParseQuality(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQuality(%q) = %v; want error", tt.input, q)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuality(%q) error: %v", tt.input, err)
			}
			if q != tt.want {
				t.Errorf("ParseQuality(%q) = %v; want %v", tt.input, q, tt.want)
			}
			if got := q.Multiplier(); got != tt.wantMult {
				t.Errorf("Multiplier() = %v; want %v", got, tt.wantMult)
			}
			if got := q.String(); got != tt.input {
				t.Errorf("String() = %q; want %q", got, tt.input)
			}
		})
	}
}
