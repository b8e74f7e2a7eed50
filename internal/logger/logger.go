// Package logger owns the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	appCtx "github.com/baechuer/real-time-ressys/services/destination-service/internal/pkg/context"
)

const serviceName = "destination-service"

// Log is the configured service logger. It is also installed as zlog.Logger.
var Log zerolog.Logger

// Options controls output. Zero values mean info level on a console writer.
type Options struct {
	Level zerolog.Level
	JSON  bool
}

// OptionsFromEnv reads LOG_LEVEL and LOG_FORMAT ("json" or "console").
// An unknown level falls back to info.
func OptionsFromEnv() Options {
	opts := Options{Level: zerolog.InfoLevel}
	if lvl, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && lvl != zerolog.NoLevel {
		opts.Level = lvl
	}
	opts.JSON = strings.EqualFold(os.Getenv("LOG_FORMAT"), "json")
	return opts
}

// New builds a logger tagged with the service name.
func New(w io.Writer, opts Options) zerolog.Logger {
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(opts.Level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

func Init() {
	InitWithWriter(os.Stdout)
}

// InitWithWriter installs an env-configured logger writing to w.
func InitWithWriter(w io.Writer) {
	Log = New(w, OptionsFromEnv())
	zlog.Logger = Log
}

// Ctx returns Log with the request id attached when ctx carries one.
func Ctx(ctx context.Context) *zerolog.Logger {
	if reqID := appCtx.GetRequestID(ctx); reqID != "" {
		l := Log.With().Str("request_id", reqID).Logger()
		return &l
	}
	return &Log
}
