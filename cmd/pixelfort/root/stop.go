package root

import (
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
)

// stopCmd stops the running containers without removing volumes
// Usage: `pixelfort stop`
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the pixelfort containers (keeps volumes)",
	Long: `Stop the pixelfort containers (keeps volumes).

If you want to wipe all service state as well, use pixelfort purge`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return dependency.Check(dependency.Docker, dependency.DockerDaemon)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, err := newComposeClient()
		if err != nil {
			return err
		}
		if err := client.Stop(); err != nil {
			return err
		}

		printer.Successln("Pixelfort successfully stopped")
		return nil
	},
}
