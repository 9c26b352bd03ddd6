package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sshconv/internal/config"
	"github.com/thoreinstein/sshconv/internal/editor"
	"github.com/thoreinstein/sshconv/internal/errors"
	"github.com/thoreinstein/sshconv/internal/paths"
	"github.com/thoreinstein/sshconv/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sshconv configuration",
	Long: `Manage sshconv configuration stored in ~/.config/sshconv/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  sshconv config

  # Get the configured SSH directory
  sshconv config get ssh_dir

  # Point sshconv at a different directory
  sshconv config set ssh_dir ~/work/ssh

See Also: sshconv config get, sshconv config set`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key.`,
	Example: `  # Get version
  sshconv config get version

  # Get the configured SSH directory
  sshconv config get ssh_dir

See Also: sshconv config set, sshconv config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write it to the config file.

Valid keys are version and ssh_dir.`,
	Example: `  # Set version
  sshconv config set version 1

  # Set the SSH directory scanned by default
  sshconv config set ssh_dir ~/work/ssh

See Also: sshconv config get, sshconv config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  # List all configuration
  sshconv config list

See Also: sshconv config get, sshconv config set`,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses the $EDITOR environment variable, falling back to $VISUAL, then
nano, then vi. If no configuration file exists, prints an error
suggesting to run 'sshconv config set' first.`,
	Example: `  # Open config in default editor
  sshconv config edit

  # Open with specific editor
  EDITOR=nano sshconv config edit

See Also: sshconv config list, sshconv config set`,
	RunE: runConfigEdit,
}

func runConfigGet(_ *cobra.Command, args []string) error {
	key := args[0]

	if !viper.IsSet(key) {
		fmt.Println("not set")
		return nil
	}

	fmt.Println(viper.GetString(key))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	switch key {
	case "version":
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Newf("version must be an integer, got %q", value)
		}
		viper.Set(key, v)

	case "ssh_dir":
		if strings.TrimSpace(value) == "" {
			return errors.New("ssh_dir cannot be empty")
		}
		viper.Set(key, value)

	default:
		return errors.Newf("unknown config key %q (valid: version, ssh_dir)", key)
	}

	if err := writeConfig(); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", key, value)

	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	// Build config structure from viper
	cfg := map[string]any{
		"version": viper.GetInt("version"),
		"ssh_dir": viper.GetString("ssh_dir"),
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Print(string(data))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	configPath := configFilePath()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return errors.Newf("config file not found at %s\nRun 'sshconv config set' to create it", configPath)
	}

	return editor.Open(configPath)
}

// configFilePath returns the config file location, honoring the same
// SSHCONV_CONFIG_DIR override the loader searches.
func configFilePath() string {
	if dir := os.Getenv("SSHCONV_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return filepath.Join(paths.ConfigHome(), config.AppName, "config.yaml")
}

// writeConfig writes the current viper configuration to the config file.
func writeConfig() error {
	configPath := configFilePath()

	// Build config structure
	cfg := map[string]any{
		"version": viper.GetInt("version"),
		"ssh_dir": viper.GetString("ssh_dir"),
	}

	// Ensure directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, cfg); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}
