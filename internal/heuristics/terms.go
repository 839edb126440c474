package heuristics

// DefaultDenyList returns the built-in list of manipulative or misleading
// sales phrases. Deployments targeting other markets swap this via config.
func DefaultDenyList() []string {
	return []string{
		"no returns",
		"no refunds",
		"ncnr",
		"act now",
		"no id check",
		"guaranteed investment",
		"instant profit",
	}
}

// DefaultSectionKeywords returns section-heading keywords that count as
// structure in a long description.
func DefaultSectionKeywords() []string {
	return []string{
		"features",
		"specs",
		"specifications",
		"condition",
		"included items",
		"accessories",
		"notes",
	}
}

// DefaultHedgingTerms returns evasive or hedging phrases scored by the
// authenticity axis. Distinct from the deny-list: these are not grounds
// for a warning on their own, only for a higher authenticity risk.
func DefaultHedgingTerms() []string {
	return []string{
		"uninspected",
		"not tested",
		"no authenticity guarantee",
		"no returns",
		"no complaints",
		"probably",
		"looks like",
		"as-is",
	}
}

// DefaultCategorySignals returns keywords whose presence suggests the text
// describes a recognizable category, lowering category-fit risk.
func DefaultCategorySignals() []string {
	return []string{
		"camera",
		"lens",
		"book",
		"card",
		"trading card",
		"clothing",
		"sneaker",
		"game",
		"console",
		"pc",
		"mac",
		"laptop",
		"smartphone",
	}
}

// DefaultInvestmentSignals returns grading and investment keywords that
// select the higher static reference price in the heuristic price band.
func DefaultInvestmentSignals() []string {
	return []string{
		"psa",
		"bgs",
		"cgc",
		"graded",
		"gem mint",
		"promo",
		"investment",
	}
}
