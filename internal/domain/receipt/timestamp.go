package receipt

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedTimestamp = errors.New("malformed history timestamp")

// monthNames maps the processor's two-digit month codes to Portuguese
// month names. Unknown codes pass through unchanged.
var monthNames = map[string]string{
	"01": "janeiro",
	"02": "fevereiro",
	"03": "março",
	"04": "abril",
	"05": "maio",
	"06": "junho",
	"07": "julho",
	"08": "agosto",
	"09": "setembro",
	"10": "outubro",
	"11": "novembro",
	"12": "dezembro",
}

// SplitTimestamp decomposes a history timestamp of the fixed form
// YYYY-MM-DD-HH.MM.SS.ffffff into its date (YYYY-MM-DD) and clock
// (HH:MM:SS) parts, discarding the microsecond group.
//
// Any deviation from that form is a payload defect, not something to patch
// over: partial results would end up printed on a receipt.
func SplitTimestamp(raw string) (date, clock string, err error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 4 {
		return "", "", fmt.Errorf("%w: expected 4 segments in %q", ErrMalformedTimestamp, raw)
	}
	for _, p := range parts[:3] {
		if !isDigits(p) {
			return "", "", fmt.Errorf("%w: non-numeric date segment %q in %q", ErrMalformedTimestamp, p, raw)
		}
	}

	clockParts := strings.Split(strings.ReplaceAll(parts[3], ".", ":"), ":")
	if len(clockParts) < 3 {
		return "", "", fmt.Errorf("%w: short time segment %q in %q", ErrMalformedTimestamp, parts[3], raw)
	}
	for _, p := range clockParts[:3] {
		if !isDigits(p) {
			return "", "", fmt.Errorf("%w: non-numeric time segment %q in %q", ErrMalformedTimestamp, p, raw)
		}
	}

	return parts[0] + "-" + parts[1] + "-" + parts[2], strings.Join(clockParts[:3], ":"), nil
}

// DecomposeTimestamp returns the individual components used by the receipt
// sentence, with the month already mapped to its Portuguese name.
func DecomposeTimestamp(raw string) (day, month, year, clock string, err error) {
	if _, clock, err = SplitTimestamp(raw); err != nil {
		return "", "", "", "", err
	}
	parts := strings.Split(raw, "-")
	return parts[2], MonthName(parts[1]), parts[0], clock, nil
}

// MonthName maps a two-digit month code to its Portuguese name. Unmapped
// codes are returned unchanged.
func MonthName(code string) string {
	if name, ok := monthNames[code]; ok {
		return name
	}
	return code
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
