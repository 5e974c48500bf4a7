package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	httpAdapter "github.com/aretw0/arbor/internal/adapters/http"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/demo"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/behavior"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Tick a demo controller until it stops",
	Long: `Builds the configured demo controller and ticks its tree at the configured
interval until a stop status, the tick limit or an interrupt ends the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyRunFlags(cmd, &cfg); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level, _ := logging.ParseLevel(cfg.LogLevel)
		quiet, _ := cmd.Flags().GetBool("quiet")
		report, _ := cmd.Flags().GetBool("report")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		_, err = runDemo(ctx, cfg, runOptions{
			Out:    cmd.OutOrStdout(),
			Logger: logging.New(level),
			Banner: !quiet,
			Report: report,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("demo", "", "Demo to run: pick_and_place or gripper")
	runCmd.Flags().Duration("interval", 0, "Time between ticks")
	runCmd.Flags().Uint64("max-ticks", 0, "Stop after this many ticks (0 means no limit)")
	runCmd.Flags().StringSlice("stop-on", nil, "Statuses that end the run")
	runCmd.Flags().String("metrics-addr", "", "Serve /metrics, /status and /health on this address")
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
	runCmd.Flags().Bool("report", false, "Print a summary of the run when it ends")
}

// applyRunFlags overrides cfg with the run flags the user set.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("demo") {
		cfg.Demo.Name, err = flags.GetString("demo")
	}
	if err == nil && flags.Changed("interval") {
		cfg.Interval, err = flags.GetDuration("interval")
	}
	if err == nil && flags.Changed("max-ticks") {
		cfg.MaxTicks, err = flags.GetUint64("max-ticks")
	}
	if err == nil && flags.Changed("stop-on") {
		cfg.StopOn, err = flags.GetStringSlice("stop-on")
	}
	if err == nil && flags.Changed("metrics-addr") {
		cfg.MetricsAddr, err = flags.GetString("metrics-addr")
	}
	return err
}

type runOptions struct {
	Out    io.Writer
	Logger *slog.Logger
	Banner bool
	Report bool
	// Registry collects the run's metrics. Nil means a fresh registry.
	Registry *prometheus.Registry
}

// runDemo builds the demo named in cfg and ticks it until the runner stops.
// Cancellation through ctx is a normal way to end a run.
func runDemo(ctx context.Context, cfg config.Config, opts runOptions) (runner.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return runner.Result{}, err
	}
	monitor := httpAdapter.NewMonitor()
	hooks := observability.Combine(observability.Logging(logger), metrics.Hooks(), monitor.Hooks())

	scenario, err := demo.Build(cfg.Demo, arbor.WithLogger(logger), arbor.WithHooks(hooks))
	if err != nil {
		return runner.Result{}, err
	}
	stopOn, err := cfg.StopStatuses()
	if err != nil {
		return runner.Result{}, err
	}

	serveCtx, cancelServe := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancelServe()
		wg.Wait()
	}()
	if cfg.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handler := httpAdapter.NewHandler(monitor, reg, logger)
			if err := httpAdapter.Serve(serveCtx, cfg.MetricsAddr, handler, logger); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	profile := termenv.NewOutput(opts.Out).EnvColorProfile()
	if opts.Banner {
		tui.PrintBanner(opts.Out, profile, arbor.Version)
	}

	counts := make(map[behavior.Status]uint64)
	r := runner.New(scenario.Tree,
		runner.WithInterval(cfg.Interval),
		runner.WithMaxTicks(cfg.MaxTicks),
		runner.WithStopOn(stopOn...),
		runner.WithLogger(logger),
		runner.WithOnTick(func(n uint64, status behavior.Status) {
			counts[status]++
			fmt.Fprintln(opts.Out, tui.TickLine(profile, n, status, scenario.Summary()))
			scenario.OnTick(n, status)
		}),
	)

	res, err := r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return res, err
	}

	if opts.Report {
		md := tui.Report{
			Tree:    scenario.Tree.Name(),
			Ticks:   res.Ticks,
			Last:    res.Last,
			Stopped: res.Stopped,
			Counts:  counts,
			Summary: scenario.Summary(),
		}.Markdown()
		out, err := tui.NewRenderer()(md)
		if err != nil {
			out = md
		}
		fmt.Fprint(opts.Out, out)
	}
	return res, nil
}
