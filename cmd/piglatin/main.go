// piglatin - Pig Latin text filter
//
// Reads all of standard input, converts every word and writes the result to
// standard output.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kolkov/piglatin"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: piglatin < input > output"
	longUsage  = `Reads text from standard input and writes it to standard output with
every word converted to Pig Latin. Runs of whitespace become one space.

Other:
  -h, --help        show this help message
  -version          show piglatin version and exit
`
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "piglatin: cannot initialize logger: %v\n", err)
		os.Exit(exitError)
	}

	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) int {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			fmt.Fprintf(stdout, "piglatin %s - Pig Latin text filter\n\n%s\n\n%s", version, shortUsage, longUsage)
			return exitOK
		case "-version", "--version":
			fmt.Fprintf(stdout, "piglatin version %s\n", version)
			fmt.Fprintf(stdout, "  commit: %s\n", commit)
			fmt.Fprintf(stdout, "  built:  %s\n", date)
			return exitOK
		default:
			return errorExitf(stderr, exitUsage, "unexpected argument: %s\n%s", arg, shortUsage)
		}
	}

	// Buffered output for performance; Exec flushes it
	out := bufio.NewWriter(stdout)

	if err := piglatin.Exec(stdin, out, &piglatin.Config{Logger: logger}); err != nil {
		return errorExit(stderr, err)
	}
	return exitOK
}

// newLogger builds the stderr logger used for word-level warnings.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level.SetLevel(zapcore.WarnLevel)
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.CallerKey = ""
	cfg.EncoderConfig.StacktraceKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// errorExitf prints formatted error message and returns code
func errorExitf(stderr io.Writer, code int, format string, args ...interface{}) int {
	fmt.Fprintf(stderr, "piglatin: "+format+"\n", args...)
	return code
}

// errorExit prints error and returns exit code 1
func errorExit(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "piglatin: %v\n", err)
	return exitError
}
