package cmd

import (
	"github.com/mj1618/scap/internal/model"
	"github.com/mj1618/scap/internal/output"
	"github.com/spf13/cobra"
)

var supportedCmd = &cobra.Command{
	Use:   "supported",
	Short: "Check whether this OS version supports screen capture",
	Long: `Compare the host OS version against the minimum the capture backend needs.

Exits 0 when supported, 2 when the OS is too old, and 3 when the OS version
cannot be read.`,
	Args: cobra.NoArgs,
	RunE: runSupported,
}

func init() {
	rootCmd.AddCommand(supportedCmd)
}

func runSupported(cmd *cobra.Command, args []string) error {
	ok, err := provider.Version.IsSupported()
	if err != nil {
		return logFault("version check", err)
	}
	appLog.Debug("version check", "supported", ok)
	if err := output.Print(model.SupportReport{Supported: ok}); err != nil {
		return err
	}
	if !ok {
		return errNotSupported
	}
	return nil
}
