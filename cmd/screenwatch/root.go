package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"screenwatch/internal/adapters/capture"
	"screenwatch/internal/adapters/openai"
	"screenwatch/internal/adapters/report"
	"screenwatch/internal/core/version"
	"screenwatch/internal/modkit"
	"screenwatch/internal/modkit/module"
	"screenwatch/internal/platform/config"
	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/logger"
	phttp "screenwatch/internal/platform/net/http"
	adom "screenwatch/internal/services/analyze/domain"
	analyzemod "screenwatch/internal/services/analyze/module"
	"screenwatch/internal/services/api"
	mdom "screenwatch/internal/services/monitor/domain"
	monitormod "screenwatch/internal/services/monitor/module"
	statusmod "screenwatch/internal/services/status/module"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "screenwatch",
		Short: "Watch on-screen text and report meaningful changes",
		Long: "screenwatch captures screen text on an interval, skips captures that did not\n" +
			"meaningfully change, and reports signals, recent topics and an analysis for the rest.",
		Version:       version.Info().String(),
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), f, cmd.Flags())
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return perr.Wrap(err, perr.ErrorCodeConfig, "invalid flags")
	})
	f.bind(cmd.Flags())
	return cmd
}

// usageArgs makes bad positional arguments a configuration error, like bad flags
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return perr.Wrap(err, perr.ErrorCodeConfig, "invalid arguments")
		}
		return nil
	}
}

// app is everything run needs once configuration has been validated
type app struct {
	runner        mdom.RunnerPort
	status        module.Module
	statusAddr    string
	statusOrigins []string
}

// build resolves defaults <- env <- flags and wires the modules.
// Every error it returns is a configuration error
func build(out, errOut io.Writer, f *flags, fs *pflag.FlagSet) (*app, error) {
	cfg := config.New()
	deps := modkit.Deps{Cfg: cfg}

	mopts, err := monitormod.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	f.applyMonitor(fs, &mopts)

	copts, err := capture.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	f.applyCapture(fs, &copts)

	var aopts analyzemod.Options
	f.applyAnalyze(fs, &aopts)

	sc := cfg.Prefix("SCREENWATCH_")
	statusAddr := sc.MayString("STATUS_ADDR", "")
	f.applyStatus(fs, &statusAddr)

	analyze, err := analyzemod.New(deps, aopts, modkit.WithPorts(adom.Ports{
		Completer: openai.NewClient(openai.FromConfig(cfg)),
	}))
	if err != nil {
		return nil, err
	}

	src, err := capture.New(copts)
	if err != nil {
		return nil, err
	}

	a := &app{statusAddr: statusAddr, statusOrigins: sc.MayCSV("STATUS_ORIGINS", nil)}
	sinks := []mdom.SinkPort{report.NewConsole(out, errOut)}
	if statusAddr != "" {
		a.status = statusmod.New(deps)
		sinks = append(sinks, module.MustPortsOf[mdom.SinkPort](a.status))
	}

	monitor, err := monitormod.New(deps, mopts, modkit.WithPorts(mdom.Ports{
		Capture:    src,
		Dispatcher: module.MustPortsOf[adom.DispatcherPort](analyze),
		Sinks:      sinks,
	}))
	if err != nil {
		return nil, err
	}
	a.runner = module.MustPortsOf[mdom.RunnerPort](monitor)
	return a, nil
}

func run(ctx context.Context, out, errOut io.Writer, f *flags, fs *pflag.FlagSet) error {
	log := logger.Named("cli")

	a, err := build(out, errOut, f, fs)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	if a.status != nil {
		srv := phttp.NewServer(a.statusAddr)
		api.Mount(srv.Router(), api.Options{
			Origins: a.statusOrigins,
			Modules: []module.Module{a.status},
		})
		// a failing status server is logged but never stops the monitor
		g.Go(func() error {
			if err := srv.Run(gctx); err != nil {
				log.Error().Err(err).Str("addr", a.statusAddr).Msg("status server failed")
			}
			return nil
		})
	}
	g.Go(func() error { return a.runner.Run(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
