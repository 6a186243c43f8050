package configs

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Logger configures the zap core behind the service's slog logger. Level
// accepts the zap level names ("debug", "info", "warn", "error") plus
// "warning"; Format is "text" (console) or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// ZapLevel returns the configured level. Unknown names fall back to info.
func (c Logger) ZapLevel() zapcore.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// NormalizedFormat returns LogFormatJSON or LogFormatText.
func (c Logger) NormalizedFormat() string {
	if strings.EqualFold(c.Format, LogFormatJSON) {
		return LogFormatJSON
	}
	return LogFormatText
}
