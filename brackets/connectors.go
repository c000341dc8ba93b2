package brackets

import "github.com/Dosada05/bracketboard/models"

// Connector links a match to the slot of the later-round match its winner
// is drawn into. It is a presentation view derived from round and match
// order only; it does not claim who actually advanced.
type Connector struct {
	FromRound   models.Round      `json:"from_round"`
	FromMatchID string            `json:"from_match_id"`
	ToRound     models.Round      `json:"to_round"`
	ToMatchID   string            `json:"to_match_id"`
	ToSlot      models.WinnerSlot `json:"to_slot"`
}

// Connectors pairs adjacent matches of each main-line round onto the next
// one: matches 2j and 2j+1 feed match j. The bronze round hangs off the
// semifinals and is never linked.
func Connectors(result *models.BracketResult) []Connector {
	connectors := []Connector{}
	if result == nil {
		return connectors
	}

	mainLine := make([]models.RoundGroup, 0, len(result.Rounds))
	for _, group := range result.Rounds {
		if group.Round != models.RoundBronze {
			mainLine = append(mainLine, group)
		}
	}

	for i := 0; i+1 < len(mainLine); i++ {
		from, to := mainLine[i], mainLine[i+1]
		for j, m := range from.Matches {
			target := j / 2
			if target >= len(to.Matches) {
				break
			}
			slot := models.WinnerFirst
			if j%2 == 1 {
				slot = models.WinnerSecond
			}
			connectors = append(connectors, Connector{
				FromRound:   from.Round,
				FromMatchID: m.ID,
				ToRound:     to.Round,
				ToMatchID:   to.Matches[target].ID,
				ToSlot:      slot,
			})
		}
	}
	return connectors
}
