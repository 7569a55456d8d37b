package root

import (
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/compose"
	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
)

// logsCmd streams the api service logs
// Usage: `pixelfort logs [--follow]`
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show logs of the api service",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return dependency.Check(dependency.Docker, dependency.DockerDaemon)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		follow, err := cmd.Flags().GetBool("follow")
		if err != nil {
			return err
		}

		client, err := newComposeClient()
		if err != nil {
			return err
		}
		return client.Logs(compose.APIService, follow)
	},
}

func init() {
	logsCmd.Flags().BoolP("follow", "f", false, "Follow log output")
}
