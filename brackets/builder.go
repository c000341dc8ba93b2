package brackets

import (
	"sort"

	"github.com/Dosada05/bracketboard/models"
)

// Build groups matches into canonical rounds, orders them and resolves each
// match's slots and winner. Matches with an unknown round label are left out
// of the rounds and reported in DroppedMatchIDs. The input is not modified.
func Build(matches []models.Match) (*models.BracketResult, error) {
	result := &models.BracketResult{Rounds: []models.RoundGroup{}}
	buckets := make(map[models.Round][]models.BracketMatch, len(canonicalRounds))
	refs := make(map[string]struct{})

	for _, m := range matches {
		first, second, err := Slots(m)
		if err != nil {
			return nil, err
		}

		// Counted before round filtering.
		for _, p := range m.Participants {
			if !p.IsBye() {
				refs[normalizeRef(p.Ref)] = struct{}{}
			}
		}

		round, ok := Classify(m.RoundLabel)
		if !ok {
			result.DroppedMatchIDs = append(result.DroppedMatchIDs, m.ID)
			continue
		}

		winner := WinnerOf(m, first, second)
		first.Winner = winner == models.WinnerFirst
		second.Winner = winner == models.WinnerSecond

		buckets[round] = append(buckets[round], models.BracketMatch{
			ID:            m.ID,
			RoundLabel:    m.RoundLabel,
			DisplayName:   m.DisplayName,
			Status:        m.Status,
			WinnerRef:     m.WinnerRef,
			ScheduledTime: m.ScheduledTime,
			CompletedTime: m.CompletedTime,
			First:         first,
			Second:        second,
			Winner:        winner,
		})
	}

	for _, round := range canonicalRounds {
		group := buckets[round]
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].DisplayName < group[j].DisplayName
		})
		result.Rounds = append(result.Rounds, models.RoundGroup{Round: round, Matches: group})
	}
	result.ParticipantCount = len(refs)

	return result, nil
}
