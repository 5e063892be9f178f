package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gofitch/gofitch/logic"
)

var parseCmd = &cobra.Command{
	Use:   "parse <formula>",
	Short: "Parse a formula and reprint it with minimal parentheses.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := logic.Parse(args[0])
		if err != nil {
			return fmt.Errorf("could not parse formula: %v", err)
		}
		log.Debugf("parsed %d variables", len(logic.Variables(f)))
		fmt.Println(logic.Print(f, printMode(cmd)))
		return nil
	},
}

func printMode(cmd *cobra.Command) logic.Mode {
	if ascii, _ := cmd.Flags().GetBool("ascii"); ascii {
		return logic.ASCII
	}
	return logic.UTF8
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
