package module

import (
	"time"

	"screenwatch/internal/platform/config"
)

// Options holds configuration settings for the analyze module
type Options struct {
	Model   string
	Timeout time.Duration
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SCREENWATCH_")
	return Options{
		Model:   sc.MayString("MODEL", "local"),
		Timeout: sc.MayDuration("ANALYZE_TIMEOUT", 60*time.Second),
	}
}

// Credential reads the API key from the environment on every call
func Credential(cfg config.Conf) func() string {
	oc := cfg.Prefix("OPENAI_")
	return func() string { return oc.MayString("API_KEY", "") }
}
