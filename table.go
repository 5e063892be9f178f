package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gofitch/gofitch/logic"
	"github.com/gofitch/gofitch/truth"
)

var tableCmd = &cobra.Command{
	Use:   "table <formula>",
	Short: "Print the truth table of a formula.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := logic.Parse(args[0])
		if err != nil {
			return fmt.Errorf("could not parse formula: %v", err)
		}
		t, err := truth.New(f)
		if err != nil {
			return fmt.Errorf("could not build truth table: %v", err)
		}
		printTable(t, printMode(cmd))
		return nil
	},
}

func printTable(t *truth.Table, mode logic.Mode) {
	header := append(append([]string{}, t.Variables...), logic.Print(t.Formula, mode))
	fmt.Println(strings.Join(header, " | "))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(t.Variables)+1)
		for _, name := range t.Variables {
			cells = append(cells, cell(row.Inputs[name]))
		}
		cells = append(cells, cell(row.Result))
		fmt.Println(strings.Join(cells, " | "))
	}
	fmt.Printf("classification: %s\n", t.Class())
}

func cell(b bool) string {
	if b {
		return color.GreenString("T")
	}
	return color.RedString("F")
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
