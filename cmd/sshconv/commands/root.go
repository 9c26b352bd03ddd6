// Package commands implements the CLI commands for sshconv.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sshconv/cmd"
	"github.com/thoreinstein/sshconv/internal/config"
	"github.com/thoreinstein/sshconv/internal/convert"
	"github.com/thoreinstein/sshconv/internal/errors"
	"github.com/thoreinstein/sshconv/internal/logging"
	"github.com/thoreinstein/sshconv/internal/paths"
	"github.com/thoreinstein/sshconv/internal/scan"
	"github.com/thoreinstein/sshconv/pkg/fileutil"
)

// Target format flags. Exactly one must be set per invocation.
var (
	toSSH  bool
	toYAML bool
	toJSON bool
)

// fromFormat holds the value of the --from flag.
var fromFormat string

// srcPath holds the value of the --src flag.
var srcPath string

// destPath holds the value of the --dest flag.
var destPath string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg holds the configuration loaded during initialization.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Conversion flags
	rootCmd.Flags().BoolVar(&toSSH, "to-ssh", false, "convert to ssh_config format")
	rootCmd.Flags().BoolVar(&toYAML, "to-yaml", false, "convert to YAML format")
	rootCmd.Flags().BoolVar(&toJSON, "to-json", false, "convert to JSON format")
	rootCmd.Flags().StringVar(&fromFormat, "from", "",
		`source format of stdin or file input: ssh, yaml, json (default: auto-detect)`)
	rootCmd.Flags().StringVarP(&srcPath, "src", "s", "",
		"source file or directory (default: the configured SSH directory)")
	rootCmd.Flags().StringVarP(&destPath, "dest", "d", "",
		"write output to this file instead of stdout")

	// Add persistent flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Add version flag
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("sshconv version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "sshconv",
	Short: "Convert SSH client configuration between ssh_config, YAML, and JSON",
	Long: `sshconv converts OpenSSH client configuration between the native
ssh_config format, YAML, and JSON.

Input is read from piped stdin, from the file or directory given with
--src, or from the configured SSH directory (~/.ssh by default), whose
configuration files are merged into a single document. The source
format is auto-detected unless --from is given; pick the output format
with exactly one of --to-ssh, --to-yaml, or --to-json.

Conversion preserves host order, directive order, and the exact casing
of every keyword and value.`,
	Example: `  # Convert the configured SSH directory to YAML
  sshconv --to-yaml

  # Convert a single file to JSON
  sshconv --to-json --src ~/.ssh/config

  # Convert piped YAML back to ssh_config
  cat hosts.yaml | sshconv --to-ssh --from yaml

  # Write the result to a file
  sshconv --to-json --src ~/.ssh/config --dest hosts.json

See Also: sshconv config, sshconv version`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfigLoad(cmd, args)
	},
	RunE: runConvert,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("SSHCONV_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfigLoad surfaces configuration load errors before a command runs.
func checkConfigLoad(cmd *cobra.Command, _ []string) error {
	// Skip for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// targetFormat resolves the --to-* flags to a single output format.
func targetFormat() (convert.Format, error) {
	var targets []convert.Format
	if toSSH {
		targets = append(targets, convert.FormatSSH)
	}
	if toYAML {
		targets = append(targets, convert.FormatYAML)
	}
	if toJSON {
		targets = append(targets, convert.FormatJSON)
	}
	if len(targets) != 1 {
		err := errors.Wrapf(errors.ErrAmbiguousTarget, "%d output formats requested", len(targets))
		return "", errors.NewUserError(err, "Pass exactly one of --to-ssh, --to-yaml, --to-json")
	}
	return targets[0], nil
}

// sourceFormat resolves the --from flag to a source format.
func sourceFormat() (convert.Format, error) {
	if fromFormat == "" {
		return convert.FormatAuto, nil
	}
	f := convert.Format(strings.ToLower(fromFormat))
	if !f.Valid() {
		err := errors.Newf("unknown source format %q (valid: %s)",
			fromFormat, strings.Join(convert.Formats(), ", "))
		return "", errors.NewUserError(err, "")
	}
	return f, nil
}

func runConvert(cmd *cobra.Command, _ []string) error {
	target, err := targetFormat()
	if err != nil {
		return err
	}
	source, err := sourceFormat()
	if err != nil {
		return err
	}

	out, err := convertInput(cmd, source, target)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// convertInput resolves the input source and produces the converted text.
// Piped stdin wins over --src, which wins over the configured SSH directory.
func convertInput(cmd *cobra.Command, source, target convert.Format) (string, error) {
	logger := logging.FromContext(cmd.Context())

	if stdinPiped(cmd) {
		logger.Debug("reading input from stdin")
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), fileutil.MaxFileSize+1))
		if err != nil {
			return "", errors.NewSystemError(errors.Wrap(err, "reading stdin"), "")
		}
		if len(data) > fileutil.MaxFileSize {
			return "", errors.NewUserError(fileutil.ErrFileTooLarge, "")
		}
		return convertText(string(data), source, target)
	}

	if srcPath != "" {
		path, err := paths.ExpandUser(srcPath)
		if err != nil {
			return "", errors.NewUserError(err, "")
		}
		info, err := os.Stat(path)
		if err != nil {
			notFound := errors.Wrapf(errors.ErrNotFound, "%s", path)
			return "", errors.NewUserError(notFound, "Check the --src path")
		}
		if info.IsDir() {
			logger.Debug("scanning source directory", "path", path)
			return convertDirectory(cmd.Context(), path, target)
		}
		logger.Debug("reading source file", "path", path)
		data, err := fileutil.ReadFileWithLimit(path)
		if err != nil {
			return "", errors.NewUserError(err, "")
		}
		return convertText(string(data), source, target)
	}

	dir := sshDir()
	logger.Debug("scanning configured SSH directory", "path", dir)
	return convertDirectory(cmd.Context(), dir, target)
}

// convertText converts a single block of input text.
func convertText(text string, source, target convert.Format) (string, error) {
	out, err := convert.Convert(text, source, target)
	if err != nil {
		return "", errors.NewUserError(err, "")
	}
	return out, nil
}

// convertDirectory merges every SSH configuration file under dir into a
// single document and renders it in the target format.
func convertDirectory(ctx context.Context, dir string, target convert.Format) (string, error) {
	doc, err := scan.Directory(ctx, dir)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return "", errors.NewUserError(err,
				"Pass --src, or set the directory with 'sshconv config set ssh_dir <path>'")
		}
		return "", errors.NewSystemError(err, "")
	}
	out, err := convert.Render(doc, target)
	if err != nil {
		return "", errors.NewUserError(err, "")
	}
	return out, nil
}

// sshDir returns the directory scanned when no explicit input is given.
func sshDir() string {
	if cfg != nil && cfg.SSHDir != "" {
		if dir, err := paths.ExpandUser(cfg.SSHDir); err == nil {
			return dir
		}
	}
	return paths.DefaultSSHDir()
}

// stdinPiped reports whether input is arriving on stdin rather than from a
// terminal. An input stream that is not an *os.File (as set in tests) always
// counts as piped.
func stdinPiped(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return true
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// writeOutput prints the converted text to stdout, or writes it to the
// --dest file when one was given.
func writeOutput(cmd *cobra.Command, text string) error {
	if destPath == "" {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	dest, err := paths.ExpandUser(destPath)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating destination directory"), "")
		}
	}
	if err := fileutil.AtomicWriteFile(dest, []byte(text), 0o644); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing destination file"), "")
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("File has been saved successfully"))
	fmt.Fprintf(cmd.OutOrStdout(), "File path: %s\n", dest)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
