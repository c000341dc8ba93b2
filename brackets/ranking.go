package brackets

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/Dosada05/bracketboard/models"
)

// RankOptions carries the caller's event settings for Rank.
type RankOptions struct {
	// PlacementRound is the raw label of the round where an explicit place
	// outranks the score. Empty disables placement override.
	PlacementRound string
}

func validatePerformance(p models.Performance) error {
	if strings.TrimSpace(p.PerformerRef) == "" {
		return fmt.Errorf("performance %q: %w", p.ID, ErrMissingPerformerRef)
	}
	if p.Place != nil && *p.Place <= 0 {
		return fmt.Errorf("performance %q: %w (got %d)", p.ID, ErrInvalidPlace, *p.Place)
	}
	if p.FinalScore != nil && (math.IsNaN(*p.FinalScore) || math.IsInf(*p.FinalScore, 0)) {
		return fmt.Errorf("performance %q: %w", p.ID, ErrInvalidFinalScore)
	}
	return nil
}

// Rank groups performances by their raw round label and orders every group.
// Groups keep the order in which their label first appears in the input.
func Rank(performances []models.Performance, opts RankOptions) (models.Rankings, error) {
	rankings := models.Rankings{}
	groupIndex := make(map[string]int)

	for _, p := range performances {
		if err := validatePerformance(p); err != nil {
			return nil, err
		}
		idx, ok := groupIndex[p.RoundLabel]
		if !ok {
			idx = len(rankings)
			groupIndex[p.RoundLabel] = idx
			rankings = append(rankings, models.RoundRanking{
				RoundLabel: p.RoundLabel,
				Placement:  opts.PlacementRound != "" && p.RoundLabel == opts.PlacementRound,
			})
		}
		entry := models.RankedPerformance{Performance: p}
		entry.Scores = slices.Clone(p.Scores)
		rankings[idx].Entries = append(rankings[idx].Entries, entry)
	}

	for i := range rankings {
		group := &rankings[i]
		entries := group.Entries
		sort.SliceStable(entries, func(a, b int) bool {
			return precedes(entries[a].Performance, entries[b].Performance, group.Placement)
		})
		for pos := range entries {
			entries[pos].Rank = pos + 1
			if group.Placement && entries[pos].Place != nil {
				entries[pos].Rank = *entries[pos].Place
			}
		}
	}

	return rankings, nil
}

// precedes reports whether a ranks strictly ahead of b: explicit place first
// (placement round only), then scored before unscored, then higher score,
// then earlier performance order.
func precedes(a, b models.Performance, placement bool) bool {
	if placement {
		aPlaced, bPlaced := a.Place != nil, b.Place != nil
		if aPlaced != bPlaced {
			return aPlaced
		}
		if aPlaced && *a.Place != *b.Place {
			return *a.Place < *b.Place
		}
	}

	aScored, bScored := a.FinalScore != nil, b.FinalScore != nil
	if aScored != bScored {
		return aScored
	}
	if aScored && *a.FinalScore != *b.FinalScore {
		return *a.FinalScore > *b.FinalScore
	}

	return a.PerformanceOrder < b.PerformanceOrder
}
