package main

import (
	"os"
	"os/signal"

	"github.com/fairbench/faircheck/internal/webserver"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCommand() *cobra.Command {
	var port int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a demo classifier endpoint for trying faircheck out",
		Long: `Start a demo classifier endpoint.

POST /classify returns random binary predictions; POST /classify/biased
always predicts 1, so a fairness evaluation against it fails by
construction. Useful for exercising the report command without a real
model behind an endpoint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			srv := webserver.New(webserver.Config{Port: port, Seed: seed})

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.ListenAndServe(ctx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8000, "Port to listen on (loopback only)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Fix the prediction RNG seed (0 = random)")

	return cmd
}
