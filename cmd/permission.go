package cmd

import (
	"github.com/mj1618/scap/internal/model"
	"github.com/mj1618/scap/internal/output"
	"github.com/spf13/cobra"
)

var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Check or request screen-recording permission",
	Long: `Report whether this process may record the screen. Without flags the
check never prompts.

With --request the OS may show a consent dialog, and the command waits until
the user answers. The printed state is the result, not whether a dialog
appeared.

Examples:
  scap permission
  scap permission --request`,
	Args: cobra.NoArgs,
	RunE: runPermission,
}

func init() {
	rootCmd.AddCommand(permissionCmd)
	permissionCmd.Flags().Bool("request", false, "Ask the OS for permission (may prompt and block)")
}

func runPermission(cmd *cobra.Command, args []string) error {
	request, _ := cmd.Flags().GetBool("request")

	var granted bool
	if request {
		appLog.Info("requesting screen-recording permission")
		granted = provider.Permission.RequestPermission()
		appLog.Info("permission request finished", "granted", granted)
	} else {
		granted = provider.Permission.HasPermission()
		appLog.Debug("permission preflight", "granted", granted)
	}
	return output.Print(model.PermissionReport{Granted: granted, Requested: request})
}
