// Package cmd implements the interactive command loop of the tracker.
//
// Each command is a small struct implementing Command; the loop reads one
// line, finds the command by name and executes it against the session. A
// command failure is reported on the output stream and never stops the loop.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jgrall/ptrack"
)

// Command is one interactive command.
type Command interface {
	Name() string
	Synopsis() string
	Execute(s *Session) error
}

// Commands lists every command the loop dispatches, in help order.
// The exit command is not listed here: it is handled by the loop itself.
var Commands = []Command{
	&assetsCmd{},
	&summaryCmd{},
	&newCmd{},
	&sellCmd{},
	&refreshCmd{},
	&loadCmd{},
	&dumpCmd{},
	&helpCmd{},
}

// The binary takes no flags and no subcommands, it boots straight into the
// loop; configuration is environment only (a .env file is honored).
const (
	envQuoteSource  = "PTK_QUOTE_SOURCE"  // "yahoo" (default) or "eodhd"
	envQuoteTimeout = "PTK_QUOTE_TIMEOUT" // Go duration, e.g. "5s"
	envLogLevel     = "PTK_LOG"           // debug, info, warn, error
	envEODHDKey     = "EODHD_API_KEY"
)

// QuoteTimeout returns the lookup timeout from the environment. Absence or
// an unparsable duration falls back to the default rather than aborting
// startup.
func QuoteTimeout() time.Duration {
	raw := os.Getenv(envQuoteTimeout)
	if raw == "" {
		return ptrack.DefaultQuoteTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return ptrack.DefaultQuoteTimeout
	}
	return d
}

// NewQuoter builds the quote source selected by the environment.
func NewQuoter(log zerolog.Logger) (ptrack.Quoter, error) {
	timeout := QuoteTimeout()
	switch src := os.Getenv(envQuoteSource); src {
	case "", "yahoo":
		return ptrack.NewYahooQuoter(timeout, log), nil
	case "eodhd":
		key := os.Getenv(envEODHDKey)
		if key == "" {
			return nil, fmt.Errorf("%s=eodhd requires %s to be set", envQuoteSource, envEODHDKey)
		}
		return ptrack.NewEODHDQuoter(key, timeout, log), nil
	default:
		return nil, fmt.Errorf("unknown quote source %q, expected yahoo or eodhd", src)
	}
}

// NewLogger builds the diagnostic logger. It writes to stderr so it never
// interleaves with the prompt on stdout.
func NewLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch os.Getenv(envLogLevel) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
