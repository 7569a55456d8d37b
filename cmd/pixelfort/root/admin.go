package root

import (
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/compose"
	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
)

// createAdminCmd creates the first admin user in a throwaway container
// Usage: `pixelfort create-admin`
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create the first admin user",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return dependency.Check(dependency.Docker, dependency.DockerDaemon)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, err := newComposeClient()
		if err != nil {
			return err
		}
		if err := client.RunOneShot(compose.APIService, "python", "create_admin.py"); err != nil {
			return err
		}

		printer.Notificationln("Remember to change the default admin password.")
		return nil
	},
}

// cleanupOrphansCmd deletes stored photo files with no database record
// Usage: `pixelfort cleanup-orphans`
var cleanupOrphansCmd = &cobra.Command{
	Use:   "cleanup-orphans",
	Short: "Delete stored photo files that have no database record",
	Long: `Delete stored photo files that have no database record.

Run this occasionally to free up space left behind by failed deletions.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return dependency.Check(dependency.Docker, dependency.DockerDaemon)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, err := newComposeClient()
		if err != nil {
			return err
		}
		return client.RunOneShot(compose.APIService, "python", "cleanup_orphans.py")
	},
}
