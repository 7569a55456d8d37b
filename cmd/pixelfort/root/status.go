package root

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/config"
	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/docker"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
)

// statusCmd shows the state of the deployed containers plus an advisory
// health probe
// Usage: `pixelfort status`
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the deployed pixelfort containers",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return dependency.Check(dependency.Docker, dependency.DockerDaemon)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		cfg, err := config.GetConfig(cmd)
		if err != nil {
			return err
		}

		dockerClient, err := docker.NewClient()
		if err != nil {
			return err
		}
		defer dockerClient.Close()

		statuses, err := dockerClient.ProjectContainers(cmd.Context(), projectName)
		if err != nil {
			return err
		}

		printer.Headerln("Deployment Status")
		if len(statuses) == 0 {
			printer.Infoln("** No pixelfort containers found. Run `pixelfort deploy` first. **")
			return nil
		}
		for _, s := range statuses {
			if s.State == "running" {
				printer.Successf("%-12s %s\n", s.Service, s.Status)
			} else {
				printer.Errorf("%-12s %s\n", s.Service, s.Status)
			}
		}
		printer.Infof("Service URL: %s\n", cfg.ServiceURL())

		probeHealth(cmd, cfg)
		return nil
	},
}

// probeHealth is advisory: a non-responsive endpoint only changes the
// displayed status text.
func probeHealth(cmd *cobra.Command, cfg *config.Config) {
	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, cfg.HealthURL(), nil)
	if err != nil {
		logger.Errors(err)
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		printer.Notificationf("Health check at %s is pending (%v)\n", cfg.HealthURL(), err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		printer.Successln("Health check PASSED")
	} else {
		printer.Notificationf("Health check at %s returned %s\n", cfg.HealthURL(), resp.Status)
	}
}
