package main

import (
	"fmt"

	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/spf13/cobra"
)

func newRubricCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rubric",
		Short: "Inspect rubric definitions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <path>",
		Short: "Load a rubric file and report whether it is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rubric.LoadFile(args[0], rubric.DefaultParams())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d criteria, version %s\n", r.Len(), r.Version())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [path]",
		Short: "Print a rubric as JSON; the built-in rubric when no path is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := rubric.Default()
			if len(args) == 1 {
				var err error
				if r, err = rubric.LoadFile(args[0], rubric.DefaultParams()); err != nil {
					return err
				}
			}
			return writeJSON(cmd.OutOrStdout(), r.Document())
		},
	})
	return cmd
}
