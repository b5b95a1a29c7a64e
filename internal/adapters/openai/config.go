package openai

import "screenwatch/internal/platform/config"

// FromConfig reads OPENAI_BASE_URL and the SCREENWATCH_ANALYZE_* pacing knobs
func FromConfig(cfg config.Conf) Options {
	oc := cfg.Prefix("OPENAI_")
	sc := cfg.Prefix("SCREENWATCH_ANALYZE_")
	return Options{
		BaseURL: oc.MayString("BASE_URL", baseURLDefault),
		Timeout: sc.MayDuration("TIMEOUT", defaultTimeout),
		RPS:     sc.MayFloat64("RPS", 1.0),
	}
}
