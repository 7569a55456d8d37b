package root

import (
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
)

// purgeCmd stops and deletes all containers and data volumes
// Usage: `pixelfort purge`
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Stop and remove all pixelfort containers and volumes",
	Long: `Stop and remove all pixelfort containers and volumes.

This will completely wipe the service state. If you only want to stop the
containers, use pixelfort stop`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return dependency.Check(dependency.Docker, dependency.DockerDaemon)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		ok, err := confirm("This deletes all pixelfort data volumes. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			printer.Infoln("Purge cancelled")
			return nil
		}

		client, err := newComposeClient()
		if err != nil {
			return err
		}
		if err := client.Down(true); err != nil {
			return err
		}

		printer.Successln("Pixelfort containers and volumes removed")
		return nil
	},
}
