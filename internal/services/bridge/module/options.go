package module

import (
	"time"

	"libfj/internal/platform/config"
)

// Options configures the Factory client built for every call
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Token     string
	UserAgent string
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	fc := cfg.Prefix("LIBFJ_FACTORY_")
	return Options{
		BaseURL:   fc.MayURL("BASE_URL", "https://factory.robocraftgame.com"),
		Timeout:   fc.MayDuration("TIMEOUT", 30*time.Second),
		Token:     fc.MayString("TOKEN", ""),
		UserAgent: fc.MayString("USER_AGENT", "libfj"),
	}
}
