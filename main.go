package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loadprobe/internal/config"
	"loadprobe/internal/coordinator"
	"loadprobe/internal/dataset"
	"loadprobe/internal/probe"
	"loadprobe/internal/ratelimit"
	"loadprobe/internal/sysinfo"
)

// networkPhaseTimeout bounds the whole fetch phase so a wedged transport
// cannot hang the demo indefinitely.
const networkPhaseTimeout = 30 * time.Second

// Report is the combined outcome of one demo run.
type Report struct {
	Data    dataset.Summary
	Network probe.Tally
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Handle interrupt signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := run(ctx); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

// run drives the two phases in order: dataset first, network second.
// If the dataset phase fails the network phase never starts.
func run(ctx context.Context) (*Report, error) {
	slog.Info("==================================================")
	slog.Info("SANDBOX CAPABILITIES DEMO")
	slog.Info("==================================================")

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// System information is cosmetic; failures are logged and ignored.
	slog.Info("[1] system information")
	info, err := sysinfo.Probe()
	if err != nil {
		slog.Warn("partial system information", "error", err)
	}
	slog.Info("runtime",
		"go_version", info.GoVersion,
		"platform", info.OS+"/"+info.Arch,
		"cpus", info.NumCPU,
		"hostname", info.Hostname)

	slog.Info("[2] data processing test")
	table := dataset.New(cfg.DatasetRows, cfg.DatasetSeed)
	table.Generate()
	summary, err := table.Process()
	if err != nil {
		return nil, err
	}
	slog.Info("data statistics",
		"mean_A", summary.MeanA,
		"mean_B", summary.MeanB,
		"std_A", summary.StdA,
		"std_B", summary.StdB)
	slog.Info("correlation A-B", "corr_AB", summary.CorrAB)

	slog.Info("[3] network resilience test")
	client := probe.NewHTTPClient(cfg.RequestTimeout)
	limits := ratelimit.New()

	probers := make([]coordinator.Prober, 0, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		probers = append(probers, probe.NewEndpointProber(endpoint, client, limits))
	}

	fetchCtx, cancel := context.WithTimeout(ctx, networkPhaseTimeout)
	defer cancel()

	results, tally, err := coordinator.New(probers, cfg.Workers).Run(fetchCtx)
	if err != nil {
		return nil, err
	}

	slog.Info("[4] test summary")
	slog.Info("data processing",
		"rows", table.Rows(),
		"transform_columns", 3)
	slog.Info("network testing",
		"endpoints", len(results),
		"workers", cfg.Workers)
	slog.Info("network results",
		"success", tally.Success,
		"error", tally.Error,
		"timeout", tally.Timeout)
	slog.Info("demo completed successfully")

	return &Report{Data: summary, Network: tally}, nil
}
