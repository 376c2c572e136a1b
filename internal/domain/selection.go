package domain

// SelectionResult is the outcome of ranking all valid combinations:
// the preferred journey plus an optional balanced alternative.
type SelectionResult struct {
	// Preferred is the primary pick; always present when any valid
	// combination survived filtering.
	Preferred JourneyCombination `json:"preferred_journey"`

	// Alternative trades a bounded amount of the non-optimized objective for
	// a qualifying gain in the other. Nil when no candidate qualifies.
	Alternative *JourneyCombination `json:"alternative_journey,omitempty"`
}

// HasAlternative reports whether a balanced alternative was found.
func (r *SelectionResult) HasAlternative() bool {
	return r.Alternative != nil
}
