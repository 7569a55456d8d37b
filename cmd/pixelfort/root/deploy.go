package root

import (
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/config"
	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/deploy"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
	"github.com/pixelfort/pixelfort-cli/tea/style"
)

// deployCmd runs the production deployment pipeline
// Usage: `pixelfort deploy`
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the pixelfort stack to production",
	Long: `Deploy the pixelfort stack to production.

The pipeline runs fail-fast through these stages:
- Preflight checks (docker, daemon, a compose-capable tool)
- Configuration validation (` + config.DefaultEnvFile + `)
- Image build
- Storage directory preparation
- One-shot database initialization
- Detached startup
- Post-start health verification (advisory)`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)
		printer.Info(style.CLIHeader("Pixelfort CLI", "Deploying the pixelfort stack") + "\n\n")

		d := &deploy.Deployer{
			Preflight:       []dependency.Dependency{dependency.Docker, dependency.DockerDaemon},
			DiscoverCompose: discoverCompose,
			LoadConfig: func() (*config.Config, error) {
				return config.GetConfig(cmd)
			},
		}

		outcome, err := d.Run(cmd.Context())
		if err != nil {
			printer.Errorf("Deployment aborted: %s\n", outcome)
			return err
		}
		if outcome == deploy.Success {
			printer.Successln("Deployment complete")
		}
		return nil
	},
}

func discoverCompose() (deploy.Compose, error) {
	client, err := newComposeClient()
	if err != nil {
		return nil, err
	}
	return client, nil
}
