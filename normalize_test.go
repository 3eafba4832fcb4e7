package nexus

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "spanish thousands", raw: "4.500.000 €", want: 4_500_000},
		{name: "millions suffix", raw: "2.4M €", want: 2_400_000},
		{name: "thousands suffix", raw: "950k €", want: 950_000},
		{name: "plain integer", raw: "1200000", want: 1_200_000},
		{name: "single ambiguous dot is thousands", raw: "2.500", want: 2_500},
		{name: "suffix keeps dot as decimal", raw: "2.500M", want: 2_500_000},
		{name: "comma decimal with suffix", raw: "1,75M €", want: 1_750_000},
		{name: "glyph and spaces stripped", raw: " 1.100.000 € ", want: 1_100_000},
		{name: "two decimals no suffix", raw: "82.40", want: 82.40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.raw)
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tc.raw, err)
			}
			if got.AsFloat() != tc.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.raw, got.AsFloat(), tc.want)
			}
		})
	}
}

func TestParseAmountMalformed(t *testing.T) {
	for _, raw := range []string{"", "€", "N/A", "--", "1.2.3M4"} {
		if _, err := ParseAmount(raw); err == nil {
			t.Errorf("ParseAmount(%q) succeeded, want error", raw)
		}
	}
}

// The round-trip law: for suffixed inputs, dividing the parsed value by the
// suffix multiplier recovers the pre-suffix decimal exactly.
func TestParseAmountRoundTrip(t *testing.T) {
	testCases := []struct {
		raw        string
		multiplier float64
		decimal    float64
	}{
		{"2.4M €", 1_000_000, 2.4},
		{"950k €", 1_000, 950},
		{"1,75M", 1_000_000, 1.75},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.raw)
		if err != nil {
			t.Fatalf("ParseAmount(%q) failed: %v", tc.raw, err)
		}
		if got.AsFloat()/tc.multiplier != tc.decimal {
			t.Errorf("ParseAmount(%q)/%v = %v, want %v", tc.raw, tc.multiplier, got.AsFloat()/tc.multiplier, tc.decimal)
		}
	}
}
