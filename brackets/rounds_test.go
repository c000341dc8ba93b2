package brackets

import (
	"testing"

	"github.com/Dosada05/bracketboard/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		label  string
		want   models.Round
		wantOK bool
	}{
		{label: "Preliminary", want: models.RoundPreliminary, wantOK: true},
		{label: "Quarterfinal", want: models.RoundQuarterfinal, wantOK: true},
		{label: "Semifinal", want: models.RoundSemifinal, wantOK: true},
		{label: "Bronze", want: models.RoundBronze, wantOK: true},
		{label: "Final", want: models.RoundFinal, wantOK: true},
		{label: "final"},
		{label: " Final"},
		{label: "Semi-final"},
		{label: "RoundRobinPool"},
		{label: ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Classify(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalOrder(t *testing.T) {
	want := []models.Round{
		models.RoundPreliminary,
		models.RoundQuarterfinal,
		models.RoundSemifinal,
		models.RoundBronze,
		models.RoundFinal,
	}
	assert.Equal(t, want, CanonicalOrder())

	// Callers get their own copy.
	order := CanonicalOrder()
	order[0] = "Tampered"
	assert.Equal(t, want, CanonicalOrder())
}
