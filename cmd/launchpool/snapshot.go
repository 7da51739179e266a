package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"launchpool/internal/storage"
)

func snapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record farm values to JSONL and, with --pg-dsn, Postgres",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	cmd.Flags().String("out", "./data/farm_snapshots.jsonl", "output JSONL path")
	cmd.Flags().StringSlice("pools", nil, "pool ids to record (comma-separated, default all)")
	cmd.Flags().Duration("interval", 0, "repeat every interval until interrupted, 0 records once")
	return cmd
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := newChainApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	sinks := []storage.SnapshotSink{storage.NewSnapshotLog(a.cfg.Out)}
	if a.pg != nil {
		sinks = append(sinks, a.pg)
	}

	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		return recordSnapshot(ctx, a, sinks)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := recordSnapshot(ctx, a, sinks); err != nil {
			a.logger.Error("snapshot failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func recordSnapshot(ctx context.Context, a *app, sinks []storage.SnapshotSink) error {
	snapshots := a.service.Snapshot(ctx, a.cfg.Pools)
	if len(snapshots) == 0 {
		return fmt.Errorf("no farm could be recorded")
	}
	for _, sink := range sinks {
		if err := sink.PutSnapshotBatch(ctx, snapshots); err != nil {
			return fmt.Errorf("write snapshots: %w", err)
		}
	}
	a.logger.Info("snapshot recorded",
		zap.Int("farms", len(snapshots)),
		zap.String("out", a.cfg.Out),
		zap.Bool("postgres", a.pg != nil),
	)
	return nil
}
