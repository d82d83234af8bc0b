package cmd

import (
	"github.com/mj1618/scap/internal/model"
	"github.com/mj1618/scap/internal/output"
	"github.com/mj1618/scap/internal/platform"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <type:id | type id>",
	Short: "Confirm a target still exists",
	Long: `Re-enumerate and print the target with the given type and id. Fails if it
is gone or, for windows, no longer active.

Examples:
  scap resolve display:1
  scap resolve window 4711`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	var key model.TargetKey
	var err error
	if len(args) == 1 {
		key, err = model.ParseTargetKey(args[0])
	} else {
		key, err = model.NewTargetKey(args[0], args[1])
	}
	if err != nil {
		return err
	}
	target, err := platform.Resolve(provider.Targets, key)
	if err != nil {
		return logFault("resolve target", err)
	}
	return output.Print(target)
}
