package cmd

import (
	"github.com/mj1618/scap/internal/model"
	"github.com/mj1618/scap/internal/output"
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List capturable displays and windows",
	Long: `List every display, then every active window, in the order the OS reports
them. Windows without a title are shown as "Unknown window".`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.Flags().Bool("displays", false, "Only list displays")
	targetsCmd.Flags().Bool("windows", false, "Only list windows")
}

func runTargets(cmd *cobra.Command, args []string) error {
	displays, _ := cmd.Flags().GetBool("displays")
	windows, _ := cmd.Flags().GetBool("windows")

	targets, err := provider.Targets.GetTargets()
	if err != nil {
		return logFault("enumerate targets", err)
	}
	appLog.Debug("enumerated targets", "count", len(targets))
	for _, t := range targets {
		appLog.Trace("target", "type", t.Type, "id", t.ID, "title", t.Title)
	}

	return output.Print(model.FilterTargets(targets, displays, windows))
}
