package main

import (
	"context"
	"fmt"
	"time"

	pb "github.com/godilite/intro-scorer/api/v1"
	grpchandlers "github.com/godilite/intro-scorer/internal/grpc"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
)

type remoteOptions struct {
	addr        string
	timeout     time.Duration
	durationSec float64
}

func newRemoteCmd() *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote <file...>",
		Short: "Score transcripts on a running server over gRPC",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := make([]*pb.ScoreRequest, 0, len(args))
			for _, p := range args {
				text, err := readInput(cmd, p)
				if err != nil {
					return err
				}
				req := &pb.ScoreRequest{Transcript: text}
				if cmd.Flags().Changed("duration") {
					req.DurationSec = proto.Float64(opts.durationSec)
				}
				reqs = append(reqs, req)
			}

			conn, err := grpc.NewClient(opts.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("dial %s: %w", opts.addr, err)
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			reports, err := scoreRemote(ctx, pb.NewTranscriptScoringClient(conn), reqs)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), reports)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:50051", "gRPC server address")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	cmd.Flags().Float64Var(&opts.durationSec, "duration", 0, "speaking time in seconds of each transcript")
	return cmd
}

func scoreRemote(ctx context.Context, client pb.TranscriptScoringClient, reqs []*pb.ScoreRequest) ([]report.ScoreReport, error) {
	if len(reqs) == 1 {
		out, err := client.ScoreTranscript(ctx, reqs[0])
		if err != nil {
			return nil, err
		}
		rep, err := report.FromProto(out)
		if err != nil {
			return nil, err
		}
		return []report.ScoreReport{rep}, nil
	}

	out, err := client.ScoreBatch(ctx, &pb.BatchRequest{Transcripts: reqs})
	if err != nil {
		return nil, err
	}
	return grpchandlers.DecodeReports(out)
}
