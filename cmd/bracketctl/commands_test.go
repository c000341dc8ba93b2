package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bracketYAML = `matches:
  - id: sf1
    round_label: Semifinal
    display_name: SF1
    status: completed
    winner_ref: P2
    participants:
      - {kind: player, ref: P1, position: Player 1}
      - {kind: player, ref: P2, position: Player 2}
  - id: f
    round_label: Final
    display_name: F
    status: scheduled
    participants:
      - {kind: player, ref: P2}
      - {kind: bye}
  - id: odd
    round_label: Round of 16
    display_name: R16
    participants: []
`

const rankJSON = `{
  "placement_round": "Final",
  "performances": [
    {"id": "1", "round_label": "Final", "performer_ref": "X", "performance_order": 1, "scores": [9, 8], "final_score": 8.5},
    {"id": "2", "round_label": "Final", "performer_ref": "Y", "performance_order": 2, "scores": [7], "final_score": 7, "place": 1},
    {"id": "3", "round_label": "Heats", "performer_ref": "Z", "performance_order": 1, "scores": [], "place": 1}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBracketCommand_Table(t *testing.T) {
	out, err := run(t, "bracket", "--file", writeFile(t, "matches.yaml", bracketYAML))
	require.NoError(t, err)

	assert.Contains(t, out, "Semifinal")
	assert.Contains(t, out, "SF1")
	assert.Contains(t, out, "BYE")
	assert.Contains(t, out, "warning: 1 match(es) with unknown round labels left out: [odd]")
}

func TestBracketCommand_JSON(t *testing.T) {
	out, err := run(t, "bracket", "--json", "--file", writeFile(t, "matches.yml", bracketYAML))
	require.NoError(t, err)

	var result models.BracketResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Rounds, 2)
	assert.Equal(t, models.RoundSemifinal, result.Rounds[0].Round)
	assert.Equal(t, models.WinnerSecond, result.Rounds[0].Matches[0].Winner)
	assert.True(t, result.Rounds[1].Matches[0].Second.Bye)
	assert.Equal(t, 2, result.ParticipantCount)
}

func TestRankCommand(t *testing.T) {
	path := writeFile(t, "performances.json", rankJSON)

	t.Run("placement round from file", func(t *testing.T) {
		out, err := run(t, "rank", "--json", "--file", path)
		require.NoError(t, err)

		var got models.Rankings
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Y", got[0].Entries[0].PerformerRef)
		assert.Equal(t, "X", got[0].Entries[1].PerformerRef)
	})

	t.Run("flag overrides file", func(t *testing.T) {
		out, err := run(t, "rank", "--json", "--file", path, "--placement-round", "Heats")
		require.NoError(t, err)

		var got models.Rankings
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "X", got[0].Entries[0].PerformerRef)
		assert.False(t, got[0].Placement)
		assert.True(t, got[1].Placement)
	})

	t.Run("table", func(t *testing.T) {
		out, err := run(t, "rank", "--file", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Final *")
		assert.Contains(t, out, "8.5")
	})
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name: "missing file flag",
			args: []string{"bracket"},
		},
		{
			name: "file does not exist",
			args: []string{"bracket", "--file", filepath.Join(t.TempDir(), "nope.json")},
		},
		{
			name: "unknown key",
			args: []string{"bracket", "--file", writeFile(t, "bad.json", `{"games": []}`)},
		},
		{
			name:    "contract violation",
			args:    []string{"bracket", "--file", writeFile(t, "three.json", `{"matches":[{"id":"m","round_label":"Final","participants":[{"kind":"bye"},{"kind":"bye"},{"kind":"bye"}]}]}`)},
			wantErr: brackets.ErrTooManyParticipants,
		},
		{
			name:    "invalid place",
			args:    []string{"rank", "--file", writeFile(t, "place.yaml", "performances:\n  - {id: a, round_label: Final, performer_ref: A, place: -1}\n")},
			wantErr: brackets.ErrInvalidPlace,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
