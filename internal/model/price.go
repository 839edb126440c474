package model

// Verdict is the fairness verdict on a listing price relative to its band.
type Verdict string

const (
	// VerdictFair indicates the price sits inside the acceptable band.
	VerdictFair Verdict = "fair"
	// VerdictHigh indicates the price exceeds the band's upper bound.
	VerdictHigh Verdict = "high"
	// VerdictLow indicates the price is below the band's lower bound.
	VerdictLow Verdict = "low"
)

// PriceRange is a suggested market price interval. Min <= Max.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Spread returns the relative width of the range, (max-min)/max.
// A wide spread signals an imprecisely specified listing.
func (r PriceRange) Spread() float64 {
	if r.Max <= 0 {
		return 0
	}
	return (r.Max - r.Min) / r.Max
}

// PriceInsight is the buyer-facing price fairness summary.
type PriceInsight struct {
	Verdict   Verdict    `json:"verdict"`
	Suggested float64    `json:"suggested"`
	Range     PriceRange `json:"range"`
	Reasoning string     `json:"reasoning,omitempty"`
}

// PriceSuggestion is the AI suggestion service's price proposal.
type PriceSuggestion struct {
	SuggestedPrice float64    `json:"suggestedPrice"`
	Reasoning      string     `json:"reasoning"`
	PriceRange     PriceRange `json:"priceRange"`
}

// DescriptionSuggestion is the AI suggestion service's description proposal.
type DescriptionSuggestion struct {
	Description string   `json:"description"`
	Highlights  []string `json:"highlights,omitempty"`
}
