package brackets

import (
	"fmt"
	"strings"

	"github.com/Dosada05/bracketboard/models"
)

func normalizeRef(ref string) string {
	return strings.TrimSpace(ref)
}

// validateMatch checks the parts of a match the engine relies on. An empty
// status is allowed; status is carried through untouched.
func validateMatch(m models.Match) error {
	if m.Status != "" && !m.Status.Valid() {
		return fmt.Errorf("match %q: %w (got %q)", m.ID, ErrUnknownMatchStatus, m.Status)
	}
	if len(m.Participants) > 2 {
		return fmt.Errorf("match %q: %w (got %d)", m.ID, ErrTooManyParticipants, len(m.Participants))
	}
	for i, p := range m.Participants {
		switch p.Kind {
		case models.ParticipantPlayer, models.ParticipantTeam:
			if normalizeRef(p.Ref) == "" {
				return fmt.Errorf("match %q, participant %d: %w", m.ID, i, ErrMissingParticipantRef)
			}
		case models.ParticipantBye:
		default:
			return fmt.Errorf("match %q, participant %d: %w (got %q)", m.ID, i, ErrUnknownParticipantKind, p.Kind)
		}
	}
	return nil
}

// Slots resolves the two competitor slots of a match. An entry whose
// Position names a slot wins that slot; otherwise the slot falls back to the
// entry at the same index, then to whichever entry is still unclaimed.
// A slot with nothing left to take is a bye.
func Slots(m models.Match) (first, second models.Slot, err error) {
	if err = validateMatch(m); err != nil {
		return models.Slot{}, models.Slot{}, err
	}

	ps := m.Participants
	claimed := [2]int{-1, -1}
	for i, p := range ps {
		pos := strings.TrimSpace(p.Position)
		switch {
		case strings.EqualFold(pos, models.PositionFirst) && claimed[0] < 0:
			claimed[0] = i
		case strings.EqualFold(pos, models.PositionSecond) && claimed[1] < 0:
			claimed[1] = i
		}
	}
	for slot := range claimed {
		if claimed[slot] >= 0 {
			continue
		}
		for _, i := range []int{slot, 1 - slot} {
			if i < len(ps) && i != claimed[1-slot] {
				claimed[slot] = i
				break
			}
		}
	}

	return slotAt(ps, claimed[0]), slotAt(ps, claimed[1]), nil
}

func slotAt(ps []models.Participant, i int) models.Slot {
	if i < 0 || i >= len(ps) || ps[i].IsBye() {
		return models.ByeSlot()
	}
	p := ps[i]
	return models.Slot{Participant: &p}
}

// WinnerOf reports which resolved slot holds the match's declared winner.
// Byes never win, and an ambiguous match (both slots carry the winner ref)
// highlights nobody.
func WinnerOf(m models.Match, first, second models.Slot) models.WinnerSlot {
	if m.WinnerRef == nil {
		return models.WinnerNone
	}
	want := normalizeRef(*m.WinnerRef)
	if want == "" {
		return models.WinnerNone
	}

	firstWins := !first.Bye && normalizeRef(first.Ref()) == want
	secondWins := !second.Bye && normalizeRef(second.Ref()) == want

	switch {
	case firstWins && !secondWins:
		return models.WinnerFirst
	case secondWins && !firstWins:
		return models.WinnerSecond
	default:
		return models.WinnerNone
	}
}
