package domain

import (
	"slices"
	"strings"

	"github.com/saransh1220/artistly/internal/shared/utils"
)

const (
	BracketUnder50k  = "under-50k"
	Bracket50kTo100k = "50k-100k"
	BracketAbove100k = "above-100k"
)

// Filter is the browse listing filter. Zero values disable a dimension.
type Filter struct {
	Category     string `json:"category"`
	Location     string `json:"location"`
	PriceRange   string `json:"priceRange"`
	Availability bool   `json:"availability"`
}

// Matches checks category, then location, then availability, then price.
// Price is the last check and decides the result on its own.
func (f Filter) Matches(a Artist) bool {
	if f.Category != "" && !slices.Contains(a.Category, f.Category) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(a.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Availability && !a.Availability {
		return false
	}
	if f.PriceRange != "" {
		return InBracket(a.FeeRange, f.PriceRange)
	}
	return true
}

// Apply keeps the artists matching f, in order.
func (f Filter) Apply(artists []Artist) []Artist {
	out := make([]Artist, 0, len(artists))
	for _, a := range artists {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// PriceValue is the amount a fee-range label is bracketed by: its first
// amount, nudged just past it for open-ended labels such as "Above ₹1,00,000"
// or "₹1,00,000+". Labels without digits read as 0.
func PriceValue(label string) int {
	n, ok := utils.FirstAmount(label)
	if !ok {
		return 0
	}
	trimmed := strings.TrimSpace(strings.ToLower(label))
	if strings.HasPrefix(trimmed, "above") || strings.HasSuffix(trimmed, "+") {
		return n + 1
	}
	return n
}

// InBracket classifies a fee-range label. Unknown brackets match everything.
func InBracket(label, bracket string) bool {
	v := PriceValue(label)
	switch bracket {
	case BracketUnder50k:
		return v < 50000
	case Bracket50kTo100k:
		return v >= 50000 && v <= 100000
	case BracketAbove100k:
		return v > 100000
	default:
		return true
	}
}
