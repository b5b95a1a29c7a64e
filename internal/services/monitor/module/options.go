package module

import (
	"time"

	"screenwatch/internal/core/change"
	"screenwatch/internal/core/normalize"
	"screenwatch/internal/platform/config"
	adom "screenwatch/internal/services/analyze/domain"
	"screenwatch/internal/services/monitor/domain"
)

// Options holds configuration settings for the monitor module.
// Interval is in seconds to match the --interval flag
type Options struct {
	Interval  float64
	Region    string
	History   int
	MinChange int
	Strategy  string
	Normalize string
	ShowRaw   bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) (Options, error) {
	sc := cfg.Prefix("SCREENWATCH_")
	def := domain.Defaults()

	strategy, err := sc.Enum("STRATEGY", string(def.Strategy), string(change.StrategyFuzzy), string(change.StrategyDigest))
	if err != nil {
		return Options{}, err
	}
	norm, err := sc.Enum("NORMALIZE", def.Normalize.String(), "collapse", "strict")
	if err != nil {
		return Options{}, err
	}

	return Options{
		Interval:  sc.MayFloat64("INTERVAL", def.Interval.Seconds()),
		Region:    sc.MayString("REGION", ""),
		History:   sc.MayInt("HISTORY", def.HistoryCapacity),
		MinChange: sc.MayInt("MIN_CHANGE", def.MinChange),
		Strategy:  strategy,
		Normalize: norm,
		ShowRaw:   sc.MayBool("SHOW_RAW", false),
	}, nil
}

// RunConfig parses and validates o into the loop's immutable configuration
func (o Options) RunConfig(analyzer adom.Mode) (domain.RunConfig, error) {
	region, err := domain.ParseRegion(o.Region)
	if err != nil {
		return domain.RunConfig{}, err
	}
	strategy, err := change.ParseStrategy(o.Strategy)
	if err != nil {
		return domain.RunConfig{}, err
	}
	norm, err := normalize.ParseMode(o.Normalize)
	if err != nil {
		return domain.RunConfig{}, err
	}

	cfg := domain.RunConfig{
		Interval:        time.Duration(o.Interval * float64(time.Second)),
		Region:          region,
		HistoryCapacity: o.History,
		MinChange:       o.MinChange,
		Strategy:        strategy,
		Normalize:       norm,
		Analyzer:        analyzer,
		ShowRaw:         o.ShowRaw,
	}
	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, err
	}
	return cfg, nil
}
