package cmd

import (
	"fmt"
	"strconv"

	"github.com/mj1618/scap/internal/model"
	"github.com/mj1618/scap/internal/output"
	"github.com/spf13/cobra"
)

var mainDisplayCmd = &cobra.Command{
	Use:   "main-display",
	Short: "Show the primary display",
	Long: `Show the primary display as a target. Exits 3 if the OS reports a primary
display that is missing from the current enumeration.`,
	Args: cobra.NoArgs,
	RunE: runMainDisplay,
}

var scaleFactorCmd = &cobra.Command{
	Use:   "scale-factor [display-id]",
	Short: "Show a display's integer backing scale",
	Long: `Show pixel width divided by logical width for a display, truncated to an
integer. Without an id the primary display is used.

Examples:
  scap scale-factor
  scap scale-factor 69733378`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScaleFactor,
}

func init() {
	rootCmd.AddCommand(mainDisplayCmd)
	rootCmd.AddCommand(scaleFactorCmd)
}

func runMainDisplay(cmd *cobra.Command, args []string) error {
	main, err := provider.Displays.GetMainDisplay()
	if err != nil {
		return logFault("main display", err)
	}
	return output.Print(main)
}

func runScaleFactor(cmd *cobra.Command, args []string) error {
	var displayID uint32
	if len(args) == 1 {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		displayID = id
	} else {
		main, err := provider.Displays.GetMainDisplay()
		if err != nil {
			return logFault("main display", err)
		}
		displayID = main.ID
	}

	scale, err := provider.Displays.GetScaleFactor(displayID)
	if err != nil {
		return err
	}
	appLog.Debug("scale factor", "display", displayID, "scale", scale)
	return output.Print(model.ScaleReport{DisplayID: displayID, ScaleFactor: scale})
}

func parseID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a non-negative 32-bit integer", s)
	}
	return uint32(n), nil
}
