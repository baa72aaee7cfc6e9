package main

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print word, character and sentence counts without scoring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			svc, err := root.scoringService(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), svc.QuickStats(text))
		},
	}
}
