package model

// SuggestionRequest carries the listing fields sent with price and
// description suggestion calls.
type SuggestionRequest struct {
	Title         string `json:"title"`
	Condition     string `json:"condition"`
	CategoryLabel string `json:"category"`
	Description   string `json:"description"`
}

// RiskRequest carries the listing fields sent with a risk assessment call.
// ImageDescription is an opaque hint produced by an external image analysis
// service; it is forwarded verbatim.
type RiskRequest struct {
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Condition        string   `json:"condition"`
	Description      string   `json:"description"`
	Price            int64    `json:"price"`
	Tags             []string `json:"tags,omitempty"`
	ImageDescription string   `json:"imageDescription,omitempty"`
}

// CategoryFit is the AI's opinion on whether the selected category matches
// the listing text.
type CategoryFit string

const (
	// CategoryFitMatch means the category matches the listing.
	CategoryFitMatch CategoryFit = "match"
	// CategoryFitMismatch means the category contradicts the listing.
	CategoryFitMismatch CategoryFit = "mismatch"
)

// AIRiskResponse is the normalized risk assessment from the AI suggestion
// service. Every field is independently optional: a nil pointer means the
// service did not return that opinion, and the corresponding axis is simply
// omitted rather than failing the assessment.
type AIRiskResponse struct {
	RiskScore          *float64     `json:"riskScore,omitempty"` // [0,1]
	Reason             string       `json:"reason,omitempty"`
	ClarityScore       *float64     `json:"clarityScore,omitempty"` // [0,100]
	ClarityReason      string       `json:"clarityReason,omitempty"`
	AuthenticityScore  *float64     `json:"authenticityScore,omitempty"` // [0,100]
	AuthenticityReason string       `json:"authenticityReason,omitempty"`
	CategoryFit        *CategoryFit `json:"categoryFit,omitempty"`
	CategoryReason     string       `json:"categoryReason,omitempty"`
	ImageMismatch      *bool        `json:"imageMismatch,omitempty"`
	Flags              []string     `json:"flags,omitempty"`
}

// Empty reports whether the response carries no usable opinion at all.
func (r *AIRiskResponse) Empty() bool {
	if r == nil {
		return true
	}
	return r.RiskScore == nil &&
		r.ClarityScore == nil &&
		r.AuthenticityScore == nil &&
		r.CategoryFit == nil &&
		r.ImageMismatch == nil &&
		len(r.Flags) == 0
}
