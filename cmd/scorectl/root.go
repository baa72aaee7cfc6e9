package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/godilite/intro-scorer/internal/app"
	"github.com/godilite/intro-scorer/internal/config"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	rubricPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "scorectl",
		Short:        "Score self-introduction transcripts against a rubric",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.rubricPath, "rubric", "", "rubric file (.csv, .xlsx or .yaml); overrides RUBRIC_PATH")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		newScoreCmd(opts),
		newStatsCmd(opts),
		newRubricCmd(),
		newRemoteCmd(),
	)
	return cmd
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// scoringService builds the same pipeline the server runs, from the
// environment plus the command line overrides.
func (o *rootOptions) scoringService(cmd *cobra.Command) (*service.ScoringService, error) {
	cfg := config.LoadFromEnv()
	if o.rubricPath != "" {
		cfg.RubricPath = o.rubricPath
		cfg.RubricDBPath = ""
	}

	logger := o.logger().Named("scorectl")
	r, err := app.LoadRubric(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, err
	}
	return service.NewScoringService(r, app.NewExtractor(cfg, logger), logger,
		service.WithBatchConcurrency(cfg.BatchConcurrency),
	), nil
}

// readInput reads a transcript file; "-" reads standard input.
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(io.LimitReader(cmd.InOrStdin(), service.MaxTranscriptBytes+1))
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func writeReports(w io.Writer, reports []report.ScoreReport) error {
	if len(reports) == 1 {
		b, err := report.Marshal(reports[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	docs := make([]json.RawMessage, len(reports))
	for i, rep := range reports {
		b, err := report.Marshal(rep)
		if err != nil {
			return err
		}
		docs[i] = b
	}
	return writeJSON(w, docs)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}
