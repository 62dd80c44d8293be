package parse

import (
	"context"
	"os"
	"os/signal"

	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/bootstrap"
	"github.com/dszqbsm/congress/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "parse archived all-info pages into bill records.",
	Long:  "parse archived all-info pages of one congress into bill records.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *engine.Engine) (engine.Stats, error) {
			return e.Run(ctx, congress)
		})
	},
}

var TextCmd = &cobra.Command{
	Use:   "text",
	Short: "extract bill text versions from archived text pages.",
	Long:  "extract bill text versions from archived text pages of one congress.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, e *engine.Engine) (engine.Stats, error) {
			return e.RunText(ctx, congress)
		})
	},
}

var (
	congress int
	types    []string
)

func init() {
	for _, c := range []*cobra.Command{ParseCmd, TextCmd} {
		c.Flags().IntVar(&congress, "congress", 117, "congress number")
		c.Flags().StringSliceVar(&types, "type", nil, "bill types to process, default all")
	}
}

func run(cmd *cobra.Command, stage func(context.Context, *engine.Engine) (engine.Stats, error)) error {
	path, _ := cmd.Flags().GetString("config")
	app, err := bootstrap.Load(path)
	if err != nil {
		return err
	}
	defer app.Close()
	logger := app.Logger

	opts := []engine.Option{
		engine.WithLogger(logger.Named("engine")),
		engine.WithArchive(app.Archive()),
	}
	if len(types) > 0 {
		ts := make([]bill.Type, 0, len(types))
		for _, s := range types {
			t, err := bill.ParseType(s)
			if err != nil {
				return err
			}
			ts = append(ts, t)
		}
		opts = append(opts, engine.WithTypes(ts...))
	}

	store, err := app.Storage()
	if err != nil {
		logger.Error("create storage failed", zap.Error(err))
		return err
	}
	e, err := engine.New(append(opts, engine.WithStorage(store))...)
	if err != nil {
		store.Close()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	stats, err := stage(ctx, e)
	logger.Info("stage finished", zap.String("command", cmd.Name()),
		zap.Int("parsed", stats.Parsed), zap.Int("skipped", stats.Skipped))
	if cerr := store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
