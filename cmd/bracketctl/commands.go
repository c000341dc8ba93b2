package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Dosada05/bracketboard/brackets"
	"github.com/Dosada05/bracketboard/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type bracketFile struct {
	Matches []models.Match `json:"matches" yaml:"matches"`
}

type rankFile struct {
	PlacementRound string               `json:"placement_round" yaml:"placement_round"`
	Performances   []models.Performance `json:"performances" yaml:"performances"`
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "bracketctl",
		Short: "Render brackets and leaderboards from match or performance files",
		Long: `bracketctl reads tournament data from a JSON or YAML file and prints the
bracket (matches grouped by round with the winner marked) or the per-round
leaderboard (explicit places in the placement round, scores elsewhere).`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().Bool("json", false, "output JSON")
	root.AddCommand(bracketCmd(), rankCmd())
	return root
}

func bracketCmd() *cobra.Command {
	var filePath string
	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Group matches into bracket rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in bracketFile
			if err := readInput(filePath, &in); err != nil {
				return err
			}
			result, err := brackets.Build(in.Matches)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}
			renderBracket(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to a JSON or YAML file with a matches list")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func rankCmd() *cobra.Command {
	var filePath, placementRound string
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank performances per round",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in rankFile
			if err := readInput(filePath, &in); err != nil {
				return err
			}
			if cmd.Flags().Changed("placement-round") {
				in.PlacementRound = placementRound
			}
			rankings, err := brackets.Rank(in.Performances, brackets.RankOptions{PlacementRound: in.PlacementRound})
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), rankings)
			}
			renderRankings(cmd.OutOrStdout(), rankings)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to a JSON or YAML file with a performances list")
	cmd.Flags().StringVar(&placementRound, "placement-round", "", "round whose explicit places override scores (overrides the file)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBracket(w io.Writer, result *models.BracketResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Round", "Match", "First", "Second", "Winner", "Status"})
	for _, group := range result.Rounds {
		for _, m := range group.Matches {
			tw.AppendRow(table.Row{group.Round, m.DisplayName, slotLabel(m.First), slotLabel(m.Second), winnerLabel(m), m.Status})
		}
		tw.AppendSeparator()
	}
	tw.AppendFooter(table.Row{"", "", "", "", "Participants", result.ParticipantCount})
	tw.Render()

	if len(result.DroppedMatchIDs) > 0 {
		fmt.Fprintf(w, "warning: %d match(es) with unknown round labels left out: %v\n", len(result.DroppedMatchIDs), result.DroppedMatchIDs)
	}
}

func slotLabel(s models.Slot) string {
	if s.Bye {
		return "BYE"
	}
	return s.Ref()
}

func winnerLabel(m models.BracketMatch) string {
	switch m.Winner {
	case models.WinnerFirst:
		return m.First.Ref()
	case models.WinnerSecond:
		return m.Second.Ref()
	default:
		return ""
	}
}

func renderRankings(w io.Writer, rankings models.Rankings) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Round", "Rank", "Performer", "Order", "Final Score", "Place"})
	for _, group := range rankings {
		label := group.RoundLabel
		if group.Placement {
			label += " *"
		}
		for _, e := range group.Entries {
			tw.AppendRow(table.Row{label, e.Rank, e.PerformerRef, e.PerformanceOrder, optionalFloat(e.FinalScore), optionalInt(e.Place)})
		}
		tw.AppendSeparator()
	}
	tw.Render()
}

func optionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
