package main

import (
	"fmt"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gofitch/gofitch/logic"
	"github.com/gofitch/gofitch/proof"
)

var checkCmd = &cobra.Command{
	Use:   "check <proof.yaml>",
	Short: "Check a natural-deduction proof document.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, premises, conclusion, err := loadProof(args[0])
		if err != nil {
			return fmt.Errorf("could not load proof: %v", err)
		}
		var lib proof.Library
		if path, _ := cmd.Flags().GetString("theorems"); path != "" {
			if lib, err = loadLibrary(path); err != nil {
				return fmt.Errorf("could not load theorem library: %v", err)
			}
			log.Debugf("loaded %d theorems from %s", len(lib), path)
		}
		mode := printMode(cmd)
		fmt.Println(logic.PrintSequent(premises, conclusion, mode))
		res := proof.Check(steps, premises, conclusion, lib)
		reportResult(steps, res)
		if !res.Valid || !res.Complete {
			return fmt.Errorf("proof rejected")
		}
		return nil
	},
}

// reportResult prints the accumulated diagnostics with 1-based line
// numbers, then the two verdict axes.
func reportResult(steps []proof.Step, res proof.Result) {
	lines := make(map[string]int, len(steps))
	for i, s := range steps {
		lines[s.ID] = i + 1
	}
	for _, e := range res.Errors {
		if line, ok := lines[e.StepID]; ok {
			fmt.Printf("line %d: %s: %s\n", line, e.Code, e.Message)
		} else {
			fmt.Printf("%s: %s\n", e.Code, e.Message)
		}
	}
	fmt.Printf("valid: %s, complete: %s\n", verdict(res.Valid), verdict(res.Complete))
}

func verdict(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

func init() {
	checkCmd.Flags().String("theorems", "", "YAML theorem library usable by the theorem rule")
	rootCmd.AddCommand(checkCmd)
}
