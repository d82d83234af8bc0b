package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mj1618/scap/internal/config"
	"github.com/mj1618/scap/internal/logger"
	"github.com/mj1618/scap/internal/output"
	"github.com/mj1618/scap/internal/platform"
	"github.com/mj1618/scap/internal/version"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitUnsupported = 2
	exitFault       = 3
)

// errNotSupported is returned by `scap supported` when the host is too old.
var errNotSupported = errors.New("screen capture is not supported on this OS version")

// newProvider is swapped in tests.
var newProvider = platform.NewProvider

var (
	cfg      *config.Config
	appLog   logger.LoggerInterface = logger.NewNoOpLogger()
	provider *platform.Provider
)

var rootCmd = &cobra.Command{
	Use:           "scap",
	Short:         "Discover screen-capture targets",
	Long:          "A CLI that checks screen-capture support and permission, and lists the displays and windows available for capture.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with a code that distinguishes
// environment faults from ordinary failures.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	appLog.Close()
	if code := exitCode(err); code != exitOK {
		os.Exit(code)
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case platform.IsEnvironmentFault(err):
		return exitFault
	case errors.Is(err, errNotSupported):
		return exitUnsupported
	default:
		return exitError
	}
}

func init() {
	rootCmd.Version = version.Full()
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default from config, else yaml)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/scap/config.yaml)")
	rootCmd.PersistentFlags().String("log-dir", "", "Log directory (default $XDG_STATE_HOME/scap)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs on stderr")
	rootCmd.PersistentPreRunE = setup
}

// setup loads config, applies flag overrides, then opens the logger and the
// platform provider.
func setup(cmd *cobra.Command, args []string) error {
	flags := rootCmd.PersistentFlags()

	path, _ := flags.GetString("config")
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	c, err := config.LoadFromPath(path)
	if err != nil {
		return err
	}

	if flags.Changed("format") {
		c.Format, _ = flags.GetString("format")
	}
	if flags.Changed("log-dir") {
		c.LogDir, _ = flags.GetString("log-dir")
	}
	if flags.Changed("verbose") {
		c.Verbose, _ = flags.GetBool("verbose")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	format, err := output.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	output.OutputFormat = format
	output.PrettyOutput, _ = flags.GetBool("pretty")

	l, err := logger.NewLogger(logger.LoggerOptions{Verbose: c.Verbose, LogDir: c.LogDir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: logging disabled: %v\n", err)
	} else {
		appLog.Close()
		appLog = l
	}
	appLog.Debug("starting", "command", cmd.Name(), "version", version.Version, "config", path, "log", appLog.GetLogPath())

	p, err := newProvider()
	if err != nil {
		appLog.Error("no capture backend", "error", err)
		return err
	}
	provider = p
	return nil
}

// logFault records environment faults before they abort the command.
func logFault(op string, err error) error {
	if platform.IsEnvironmentFault(err) {
		appLog.Error("environment fault", "op", op, "error", err)
	}
	return err
}
