package brackets

import "github.com/Dosada05/bracketboard/models"

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func player(ref string) models.Participant {
	return models.Participant{Kind: models.ParticipantPlayer, Ref: ref}
}

func playerAt(ref, position string) models.Participant {
	return models.Participant{Kind: models.ParticipantPlayer, Ref: ref, Position: position}
}

func matchIDs(group models.RoundGroup) []string {
	ids := make([]string, 0, len(group.Matches))
	for _, m := range group.Matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func roundsOf(result *models.BracketResult) []models.Round {
	rounds := make([]models.Round, 0, len(result.Rounds))
	for _, g := range result.Rounds {
		rounds = append(rounds, g.Round)
	}
	return rounds
}

func performerRefs(group models.RoundRanking) []string {
	refs := make([]string, 0, len(group.Entries))
	for _, e := range group.Entries {
		refs = append(refs, e.PerformerRef)
	}
	return refs
}
