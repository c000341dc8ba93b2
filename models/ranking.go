package models

// RankedPerformance pairs a performance with its derived rank. The rank is
// either the explicit place (placement round) or the 1-based list position.
type RankedPerformance struct {
	Performance
	Rank int `json:"rank"`
}

type RoundRanking struct {
	RoundLabel string              `json:"round_label"`
	Placement  bool                `json:"placement"`
	Entries    []RankedPerformance `json:"entries"`
}

// Rankings holds round groups in the order their labels first appeared in the input.
type Rankings []RoundRanking

// ByRound returns the ordered performances keyed by raw round label.
func (r Rankings) ByRound() map[string][]Performance {
	out := make(map[string][]Performance, len(r))
	for _, group := range r {
		list := make([]Performance, 0, len(group.Entries))
		for _, e := range group.Entries {
			list = append(list, e.Performance)
		}
		out[group.RoundLabel] = list
	}
	return out
}

// Round returns the group for label, if present.
func (r Rankings) Round(label string) (RoundRanking, bool) {
	for _, group := range r {
		if group.RoundLabel == label {
			return group, true
		}
	}
	return RoundRanking{}, false
}
