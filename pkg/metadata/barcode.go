package metadata

import (
	"fmt"
	"strings"
)

// Symbology identifies a 1-D retail barcode format.
type Symbology string

const (
	SymbologyEAN13 Symbology = "ean13"
	SymbologyEAN8  Symbology = "ean8"
	SymbologyUPCA  Symbology = "upca"
	SymbologyUPCE  Symbology = "upce"
)

func (s Symbology) String() string {
	return string(s)
}

func (s Symbology) IsValid() bool {
	switch s {
	case SymbologyEAN13, SymbologyEAN8, SymbologyUPCA, SymbologyUPCE:
		return true
	default:
		return false
	}
}

func NewSymbology(value string) (Symbology, error) {
	symbology := Symbology(strings.ToLower(strings.TrimSpace(value)))
	if !symbology.IsValid() {
		return "", fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s",
			SymbologyEAN13, SymbologyEAN8, SymbologyUPCA, SymbologyUPCE,
		)
	}
	return symbology, nil
}

// DetectSymbology classifies a decoded barcode string and verifies its check
// digit. Eight-digit codes are ambiguous between EAN-8 and UPC-E; EAN-8 is
// tried first, UPC-E only for number systems 0 and 1.
func DetectSymbology(code string) (Symbology, error) {
	digits, err := toDigits(code)
	if err != nil {
		return "", err
	}

	switch len(digits) {
	case 13:
		if !validateChecksum(digits) {
			return "", fmt.Errorf("invalid EAN-13 check digit in %q", code)
		}
		return SymbologyEAN13, nil
	case 12:
		if !validateChecksum(digits) {
			return "", fmt.Errorf("invalid UPC-A check digit in %q", code)
		}
		return SymbologyUPCA, nil
	case 8:
		if validateChecksum(digits) {
			return SymbologyEAN8, nil
		}
		if digits[0] <= 1 {
			if expanded, ok := expandUPCE(digits); ok && validateChecksum(expanded) {
				return SymbologyUPCE, nil
			}
		}
		return "", fmt.Errorf("invalid EAN-8/UPC-E check digit in %q", code)
	default:
		return "", fmt.Errorf("unsupported barcode length %d in %q", len(digits), code)
	}
}

func toDigits(code string) ([]int, error) {
	if code == "" {
		return nil, fmt.Errorf("empty barcode")
	}
	digits := make([]int, 0, len(code))
	for _, r := range code {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("barcode %q contains non-digit characters", code)
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, nil
}

// validateChecksum applies the GS1 mod-10 rule: weights alternate 1 and 3
// from the rightmost data digit, the last digit is the check.
func validateChecksum(digits []int) bool {
	sum := 0
	weight := 3
	for i := len(digits) - 2; i >= 0; i-- {
		sum += digits[i] * weight
		weight = 4 - weight
	}
	return (10-sum%10)%10 == digits[len(digits)-1]
}

// expandUPCE reconstructs the 12-digit UPC-A form of an 8-digit UPC-E code
// so the standard checksum applies.
func expandUPCE(digits []int) ([]int, bool) {
	n := digits[0]
	d := digits[1:7]
	check := digits[7]

	var body []int
	switch d[5] {
	case 0, 1, 2:
		body = []int{d[0], d[1], d[5], 0, 0, 0, 0, d[2], d[3], d[4]}
	case 3:
		body = []int{d[0], d[1], d[2], 0, 0, 0, 0, 0, d[3], d[4]}
	case 4:
		body = []int{d[0], d[1], d[2], d[3], 0, 0, 0, 0, 0, d[4]}
	default:
		body = []int{d[0], d[1], d[2], d[3], d[4], 0, 0, 0, 0, d[5]}
	}

	expanded := make([]int, 0, 12)
	expanded = append(expanded, n)
	expanded = append(expanded, body...)
	expanded = append(expanded, check)
	return expanded, true
}
