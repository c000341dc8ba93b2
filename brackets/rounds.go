package brackets

import "github.com/Dosada05/bracketboard/models"

var canonicalRounds = []models.Round{
	models.RoundPreliminary,
	models.RoundQuarterfinal,
	models.RoundSemifinal,
	models.RoundBronze,
	models.RoundFinal,
}

var roundIndex = func() map[models.Round]int {
	idx := make(map[models.Round]int, len(canonicalRounds))
	for i, r := range canonicalRounds {
		idx[r] = i
	}
	return idx
}()

// Classify maps a free-text round label to its canonical round. Only exact
// matches count; anything else reports false.
func Classify(label string) (models.Round, bool) {
	r := models.Round(label)
	if _, ok := roundIndex[r]; !ok {
		return "", false
	}
	return r, true
}

// CanonicalOrder returns the processing/display order of rounds.
func CanonicalOrder() []models.Round {
	out := make([]models.Round, len(canonicalRounds))
	copy(out, canonicalRounds)
	return out
}
