// Package logging provides structured logging for the sshconv CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("starting", "version", "1.0.0")
//
// # Verbosity
//
// CLI verbosity flags map onto levels with [LevelFromVerbosity]: zero -v
// flags logs warnings and errors only, -v adds info, -vv adds debug, and
// -vvv enables [LevelTrace].
//
// # Context Propagation
//
// The configured logger travels through [context.Context] so that deep
// call paths log through the same handler the CLI set up:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("skipping file", "path", path)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely:
//
//	logger := logging.NewDiscard()
package logging
