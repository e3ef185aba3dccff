package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/panelize/pkg/errors"
)

// Supported unit suffixes.
const (
	Millimetre = "mm"
	Centimetre = "cm"
)

// mmPerCm is the centimetre to millimetre factor.
const mmPerCm = 10.0

// ParseLength converts a length such as "50mm" or "2.5cm" to millimetres.
// The suffix is mandatory and the prefix must parse as a float64.
func ParseLength(s string) (float64, error) {
	var factor float64
	switch {
	case strings.HasSuffix(s, Centimetre):
		factor = mmPerCm
	case strings.HasSuffix(s, Millimetre):
		factor = 1
	default:
		return 0, errors.New(errors.ErrCodeInvalidLength, "unhandled length: %q", s)
	}

	v, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidLength, err, "unhandled length: %q", s)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.New(errors.ErrCodeInvalidLength, "unhandled length: %q", s)
	}
	return v * factor, nil
}

// ParseOffset converts a grid spacing to millimetres. It accepts everything
// ParseLength does, plus bare numbers (taken as millimetres). An empty
// string means no spacing.
func ParseOffset(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, errors.New(errors.ErrCodeInvalidLength, "unhandled offset: %q", s)
		}
		return v, nil
	}
	return ParseLength(s)
}

// FormatNumber returns the shortest decimal representation of f that
// round-trips, never using exponent notation.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatLength formats a millimetre value with the "mm" suffix.
func FormatLength(mm float64) string {
	return FormatNumber(mm) + Millimetre
}
