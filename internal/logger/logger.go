// Package logger constructs the zap loggers used by the commands.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects how a command logs.
type Options struct {
	// Env is one of local, dev and prod.  If empty, the ENV environment
	// variable is used, and local if that is unset.
	Env string

	// Level overrides the default level of the environment.
	// Valid values are debug, info, warn and error.
	Level string

	// Verbose lowers the default level to debug.  It has no effect
	// when Level is set.
	Verbose bool
}

// Env returns the logging environment named by the ENV variable,
// or "local".
func Env() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// New creates a zap logger.
//
// prod writes JSON lines at info level.  dev writes colored console output
// at debug level, with caller information.  local is meant for interactive
// use of the command line tools: short timestamps, no caller, info level.
// All output goes to stderr, so that stdout stays free for data.
func New(opts Options) (*zap.Logger, error) {
	env := opts.Env
	if env == "" {
		env = Env()
	}

	var cfg zap.Config
	switch env {
	case "prod":
		cfg = zap.NewProductionConfig()
	case "dev":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "local":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.DisableCaller = true
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", env)
	}
	cfg.OutputPaths = []string{"stderr"}

	switch {
	case opts.Level != "":
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	case opts.Verbose:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(zap.String("env", env)), nil
}
