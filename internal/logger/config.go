package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, text
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

var levels = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}

// LogLevel converts the level name to a slog.Level. Unknown names log at info.
func (c Config) LogLevel() slog.Level {
	if l, ok := levels[strings.ToLower(c.Level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns the non-empty identity attributes added to every record
func (c Config) BaseAttributes() []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}

// NewHandler builds the slog handler for w: the configured format, the base
// attributes, and session_id taken from each record's context.
func (c Config) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     c.LogLevel(),
		AddSource: c.AddSource,
	}

	var h slog.Handler
	if c.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return sessionHandler{Handler: h.WithAttrs(c.BaseAttributes())}
}
