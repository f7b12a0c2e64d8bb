package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

type Options struct {
	Development bool
	Environment string
	SentryDSN   string
	// Level applies outside development, where everything from Debug up is
	// logged. The zero value is Info.
	Level slog.Level
	// Output defaults to stdout. The CLI logs to stderr so command output stays clean.
	Output io.Writer
}

// Init installs the global logger and returns a function that flushes
// pending Sentry events.
// Development: Text format with Debug level
// Otherwise: JSON format with opts.Level
func Init(opts Options) (flush func()) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var handlers []slog.Handler
	if opts.Development {
		handlers = append(handlers, slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: opts.Level,
		}))
	}

	flush = func() {}

	// Optional Sentry handler (sends errors only)
	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Environment,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
			flush = func() {
				sentry.Flush(2 * time.Second)
			}
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)

	return flush
}
