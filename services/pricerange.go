package services

import (
	"strconv"
	"strings"
)

// PriceRange is the numeric reading of a free-text price label such as
// "1만원 미만" or "1~2만원". Unbounded means no upper limit. An invalid
// range (digits that failed to parse) matches nothing.
type PriceRange struct {
	Min       int
	Max       int
	Unbounded bool
	Valid     bool
}

// ParsePriceRange interprets a price label, in priority order:
// "미만" (less than), "이상" (or more), "~" (range), a bare number, or
// anything else as unfiltered. Each numeric segment scales by 10,000 when
// it carries the 만원 marker, by 1,000 otherwise.
func ParsePriceRange(label string) PriceRange {
	label = strings.TrimSpace(label)
	if label == "" {
		return PriceRange{Min: 0, Unbounded: true, Valid: true}
	}

	switch {
	case strings.Contains(label, "미만"):
		v, ok := parsePriceValue(label)
		if !ok {
			return PriceRange{}
		}
		return PriceRange{Min: 0, Max: v - 1, Valid: true}

	case strings.Contains(label, "이상"):
		v, ok := parsePriceValue(label)
		if !ok {
			return PriceRange{}
		}
		return PriceRange{Min: v, Unbounded: true, Valid: true}

	case strings.Contains(label, "~"):
		parts := strings.SplitN(label, "~", 2)
		lo, okLo := parsePriceValue(parts[0])
		hi, okHi := parsePriceValue(parts[1])
		if !okLo || !okHi {
			return PriceRange{}
		}
		return PriceRange{Min: lo, Max: hi - 1, Valid: true}
	}

	// A bare numeric label ("8,000") is a point price; label text without
	// digits leaves the record unfiltered.
	if v, ok := parsePriceValue(label); ok {
		return PriceRange{Min: v, Max: v, Valid: true}
	}
	return PriceRange{Min: 0, Unbounded: true, Valid: true}
}

func parsePriceValue(s string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	if strings.Contains(s, "만원") {
		return n * 10000, true
	}
	return n * 1000, true
}

// Within reports whether r lies fully inside filter. Invalid ranges on
// either side never match (fail-closed).
func (r PriceRange) Within(filter PriceRange) bool {
	if !r.Valid || !filter.Valid {
		return false
	}
	if r.Min < filter.Min {
		return false
	}
	if filter.Unbounded {
		return true
	}
	if r.Unbounded {
		return false
	}
	return r.Max <= filter.Max
}
