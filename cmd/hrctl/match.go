package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/recruitment/pkg/matching"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score candidate skills against requirements offline",
	Long:  `Reads {"candidateSkills": [...], "requirements": [...]} from a JSON file (or stdin with "-") and prints the match report with its level.`,
	RunE:  runMatch,
}

var matchInput string

func init() {
	matchCmd.Flags().StringVarP(&matchInput, "in", "i", "-", "Path to input JSON file, - for stdin")
	rootCmd.AddCommand(matchCmd)
}

type matchRequest struct {
	CandidateSkills []matching.CandidateSkill `json:"candidateSkills"`
	Requirements    []matching.Requirement    `json:"requirements"`
}

type matchOutput struct {
	matching.Report
	Level matching.MatchLevel `json:"level"`
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var r io.Reader = cmd.InOrStdin()
	if matchInput != "-" {
		f, err := os.Open(matchInput)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", matchInput, err)
		}
		defer f.Close()
		r = f
	}
	out, err := scoreMatch(r)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func scoreMatch(r io.Reader) (matchOutput, error) {
	var req matchRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return matchOutput{}, fmt.Errorf("failed to decode match input: %w", err)
	}
	rep, err := matching.CalculateMatch(req.CandidateSkills, req.Requirements)
	if err != nil {
		return matchOutput{}, err
	}
	level, err := matching.Classify(rep.MatchPercentage)
	if err != nil {
		return matchOutput{}, err
	}
	return matchOutput{Report: rep, Level: level}, nil
}
