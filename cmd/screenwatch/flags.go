package main

import (
	"screenwatch/internal/adapters/capture"
	analyzemod "screenwatch/internal/services/analyze/module"
	monitormod "screenwatch/internal/services/monitor/module"

	"github.com/spf13/pflag"
)

// flags mirror the SCREENWATCH_* keys; only flags the user set override env
type flags struct {
	interval  float64
	region    string
	history   int
	minChange int
	showRaw   bool
	model     string
	strategy  string
	normalize string

	capture     string
	captureCmd  string
	captureFile string
	captureANSI bool
	capturePTY  bool

	statusAddr string
}

func (f *flags) bind(fs *pflag.FlagSet) {
	fs.Float64Var(&f.interval, "interval", 2.0, "seconds between captures (minimum 0.5)")
	fs.StringVar(&f.region, "region", "", "capture region x1,y1,x2,y2 (default full screen)")
	fs.IntVar(&f.history, "history", 8, "number of changed snapshots kept for topic terms")
	fs.IntVar(&f.minChange, "min-change", 50, "minimum changed characters before a fuzzy update is reported")
	fs.BoolVar(&f.showRaw, "show-raw", false, "print the raw captured text with each update")
	fs.StringVar(&f.model, "model", "local", `analysis model; "local" uses the built-in heuristics`)
	fs.StringVar(&f.strategy, "strategy", "fuzzy", "change detection strategy: fuzzy | digest")
	fs.StringVar(&f.normalize, "normalize", "collapse", "text normalization: collapse | strict")

	fs.StringVar(&f.capture, "capture", capture.KindCommand, "capture provider: command | file")
	fs.StringVar(&f.captureCmd, "capture-cmd", "", "shell command whose stdout is the screen text")
	fs.StringVar(&f.captureFile, "capture-file", "", "text file re-read on every tick")
	fs.BoolVar(&f.captureANSI, "capture-ansi", false, "render capture output through a virtual terminal")
	fs.BoolVar(&f.capturePTY, "capture-pty", false, "run the capture command on a pseudo terminal")

	fs.StringVar(&f.statusAddr, "status-addr", "", "serve the read-only status API on this address")
}

func (f *flags) applyMonitor(fs *pflag.FlagSet, o *monitormod.Options) {
	if fs.Changed("interval") {
		o.Interval = f.interval
	}
	if fs.Changed("region") {
		o.Region = f.region
	}
	if fs.Changed("history") {
		o.History = f.history
	}
	if fs.Changed("min-change") {
		o.MinChange = f.minChange
	}
	if fs.Changed("show-raw") {
		o.ShowRaw = f.showRaw
	}
	if fs.Changed("strategy") {
		o.Strategy = f.strategy
	}
	if fs.Changed("normalize") {
		o.Normalize = f.normalize
	}
}

func (f *flags) applyCapture(fs *pflag.FlagSet, o *capture.Options) {
	if fs.Changed("capture") {
		o.Kind = f.capture
	}
	if fs.Changed("capture-cmd") {
		o.Command = f.captureCmd
	}
	if fs.Changed("capture-file") {
		o.File = f.captureFile
	}
	if fs.Changed("capture-ansi") {
		o.ANSI = f.captureANSI
	}
	if fs.Changed("capture-pty") {
		o.PTY = f.capturePTY
	}
}

func (f *flags) applyAnalyze(fs *pflag.FlagSet, o *analyzemod.Options) {
	if fs.Changed("model") {
		o.Model = f.model
	}
}

func (f *flags) applyStatus(fs *pflag.FlagSet, addr *string) {
	if fs.Changed("status-addr") {
		*addr = f.statusAddr
	}
}
