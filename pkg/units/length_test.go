package units

import (
	"math"
	"testing"

	"github.com/matzehuels/panelize/pkg/errors"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"50mm", 50},
		{"0mm", 0},
		{"12.5mm", 12.5},
		{"-3mm", -3},
		{"5cm", 50},
		{"2.54cm", 25.4},
		{"0.1cm", 1},
		{"1e2mm", 100},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if err != nil {
				t.Fatalf("ParseLength(%q) error: %v", tt.in, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseLength(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLengthMillimetresPassThrough(t *testing.T) {
	for _, n := range []float64{0, 0.5, 1, 3.25, 99.999, 1234.5} {
		got, err := ParseLength(FormatNumber(n) + "mm")
		if err != nil {
			t.Fatalf("ParseLength(%vmm) error: %v", n, err)
		}
		if got != n {
			t.Errorf("ParseLength(%vmm) = %v, want %v", n, got, n)
		}

		got, err = ParseLength(FormatNumber(n) + "cm")
		if err != nil {
			t.Fatalf("ParseLength(%vcm) error: %v", n, err)
		}
		if math.Abs(got-n*10) > 1e-9 {
			t.Errorf("ParseLength(%vcm) = %v, want %v", n, got, n*10)
		}
	}
}

func TestParseLengthErrors(t *testing.T) {
	tests := []string{
		"5px",
		"5",
		"",
		"mm",
		"cm",
		"abcmm",
		"5 mm",
		"5in",
		"50%",
		"5MM",
		"infmm",
		"NaNcm",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseLength(in)
			if err == nil {
				t.Fatalf("ParseLength(%q) succeeded, want error", in)
			}
			if !errors.Is(err, errors.ErrCodeInvalidLength) {
				t.Errorf("ParseLength(%q) code = %v, want %v", in, errors.GetCode(err), errors.ErrCodeInvalidLength)
			}
		})
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"10", 10, false},
		{"2.5", 2.5, false},
		{"10mm", 10, false},
		{"1cm", 10, false},
		{" 3mm ", 3, false},
		{"5px", 0, true},
		{"ten", 0, true},
		{"inf", 0, true},
		{"-Inf", 0, true},
		{"NaN", 0, true},
		{"+infmm", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOffset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOffset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseOffset(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	a, b := 0.1, 0.2 // summed at run time, not constant-folded

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{20, "20"},
		{200, "200"},
		{0.5, "0.5"},
		{-7.25, "-7.25"},
		{1e21, "1000000000000000000000"},
		{a + b, "0.30000000000000004"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatLength(t *testing.T) {
	if got := FormatLength(100); got != "100mm" {
		t.Errorf("FormatLength(100) = %q, want %q", got, "100mm")
	}
	if got := FormatLength(12.5); got != "12.5mm" {
		t.Errorf("FormatLength(12.5) = %q, want %q", got, "12.5mm")
	}
}
