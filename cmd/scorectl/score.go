package main

import (
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/spf13/cobra"
)

type scoreOptions struct {
	combine       bool
	durationSec   float64
	referencePath string
}

func newScoreCmd(root *rootOptions) *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score [file...]",
		Short: "Score one or more transcripts and print the JSON report",
		Long: "Score one or more transcripts and print the JSON report. With no file, " +
			"the transcript is read from standard input. Several files produce a " +
			"JSON array unless --combine scores them as one transcript.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			reqs, err := opts.requests(cmd, args)
			if err != nil {
				return err
			}

			svc, err := root.scoringService(cmd)
			if err != nil {
				return err
			}

			var reports []report.ScoreReport
			switch {
			case opts.combine:
				rep, err := svc.ScoreCombined(cmd.Context(), reqs)
				if err != nil {
					return err
				}
				reports = []report.ScoreReport{rep}
			case len(reqs) == 1:
				rep, err := svc.Score(cmd.Context(), reqs[0])
				if err != nil {
					return err
				}
				reports = []report.ScoreReport{rep}
			default:
				if reports, err = svc.ScoreBatch(cmd.Context(), reqs); err != nil {
					return err
				}
			}
			return writeReports(cmd.OutOrStdout(), reports)
		},
	}

	cmd.Flags().BoolVar(&opts.combine, "combine", false, "score all files as one transcript")
	cmd.Flags().Float64Var(&opts.durationSec, "duration", 0, "speaking time in seconds of each transcript")
	cmd.Flags().StringVar(&opts.referencePath, "reference", "", "file holding a model answer for similarity scoring")
	return cmd
}

func (o *scoreOptions) requests(cmd *cobra.Command, paths []string) ([]service.ScoreRequest, error) {
	var reference string
	if o.referencePath != "" {
		ref, err := readInput(cmd, o.referencePath)
		if err != nil {
			return nil, err
		}
		reference = ref
	}

	reqs := make([]service.ScoreRequest, 0, len(paths))
	for _, p := range paths {
		text, err := readInput(cmd, p)
		if err != nil {
			return nil, err
		}
		req := service.ScoreRequest{Transcript: text, Reference: reference}
		if cmd.Flags().Changed("duration") {
			d := o.durationSec
			req.DurationSec = &d
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
