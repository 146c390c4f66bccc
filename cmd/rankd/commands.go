package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Page_Rank/rankapis/rankrpc"
	"Page_Rank/rankapis/rankrpc/proto/generated"
	"Page_Rank/rankd/partition"
	"Page_Rank/rankd/service"
	"Page_Rank/rankd/service/rankapi"
	"Page_Rank/rankd/service/reranker"
	"Page_Rank/rankd/service/rpcapi"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		httpAddr         string
		grpcAddr         string
		rerankInterval   time.Duration
		partitionDetMode string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP and gRPC rank APIs and run the background re-ranker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, closeFn, err := openGraph(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			calc, err := newCalculator(g, opts)
			if err != nil {
				return err
			}

			partDet, err := partitionDetector(partitionDetMode)
			if err != nil {
				return err
			}

			httpSvc, err := rankapi.NewService(rankapi.Config{
				RankAPI:    calc,
				ListenAddr: httpAddr,
				Logger:     logger.WithField("service", "rankapi"),
			})
			if err != nil {
				return err
			}
			grp := service.Group{httpSvc}

			if grpcAddr != "" {
				rpcSvc, err := rpcapi.NewService(rpcapi.Config{
					RankAPI:    calc,
					ListenAddr: grpcAddr,
					Logger:     logger.WithField("service", "rpcapi"),
				})
				if err != nil {
					return err
				}
				grp = append(grp, rpcSvc)
			}

			if rerankInterval > 0 {
				rerankSvc, err := reranker.NewService(reranker.Config{
					GraphAPI:          g,
					Calculator:        calc,
					PartitionDetector: partDet,
					ComputeWorkers:    opts.computeWorkers,
					UpdateInterval:    rerankInterval,
					Logger:            logger.WithField("service", "reranker"),
				})
				if err != nil {
					return err
				}
				grp = append(grp, rerankSvc)
			}

			return grp.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&httpAddr, "http-addr", envString("HTTP_ADDR", ":"+envString("PORT", "3000")), "address to listen for HTTP requests")
	flags.StringVar(&grpcAddr, "grpc-addr", envString("GRPC_ADDR", ":8080"), "address to listen for gRPC requests (empty disables the gRPC API)")
	flags.DurationVar(&rerankInterval, "rerank-interval", envDuration("RERANK_INTERVAL", 5*time.Minute), "time between background re-rank passes (0 disables them)")
	flags.StringVar(&partitionDetMode, "partition-detection-mode", envString("PARTITION_DETECTION_MODE", "single"), "partition detection mode: single or dns=HEADLESS_SERVICE_NAME")
	return cmd
}

func newRankCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rank URL",
		Short: "Print the rank of a page, computing it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, closeFn, err := openRankAPI(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			rank, err := api.GetRank(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", args[0], rank)
			return nil
		},
	}
}

func newLinkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "link FROM [TO...]",
		Short: "Record the pages a page links to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, closeFn, err := openRankAPI(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			return api.RecordReference(ctx, args[0], args[1:])
		},
	}
}

// openRankAPI returns a client for a remote rankd instance when --remote is
// set, or a calculator backed by the configured graph store otherwise.
func openRankAPI(ctx context.Context, opts *options) (rankrpc.RankAPI, func() error, error) {
	if opts.remote != "" {
		conn, err := grpc.DialContext(ctx, opts.remote, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, xerrors.Errorf("unable to dial remote rank service: %w", err)
		}
		return rankrpc.NewRankClient(generated.NewPageRankClient(conn)), conn.Close, nil
	}

	g, closeFn, err := openGraph(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	calc, err := newCalculator(g, opts)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return calc, closeFn, nil
}

func partitionDetector(mode string) (partition.Detector, error) {
	switch {
	case mode == "single":
		return partition.Fixed{Partition: 0, NumPartitions: 1}, nil
	case strings.HasPrefix(mode, "dns="):
		tokens := strings.Split(mode, "=")
		return partition.DetectFromSRVRecords(tokens[1]), nil
	default:
		return nil, xerrors.Errorf("unsupported partition detection mode: %q", mode)
	}
}
