package root

import (
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/printer"
)

var AppVersion string

// versionCmd print the version number of Pixelfort CLI.
// Usage: `pixelfort version`
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the current Pixelfort CLI version",
	Run: func(_ *cobra.Command, _ []string) {
		printer.Infof("Pixelfort CLI %s\n", AppVersion)
	},
}
