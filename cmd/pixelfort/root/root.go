package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/compose"
	"github.com/pixelfort/pixelfort-cli/common/config"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
	"github.com/pixelfort/pixelfort-cli/tea/style"
)

// projectName is the compose project every command operates on.
const projectName = "pixelfort"

func init() {
	// Enable case-insensitive commands
	cobra.EnableCaseInsensitive = true

	// Register commands
	rootCmd.AddCommand(deployCmd, doctorCmd, statusCmd, stopCmd, purgeCmd,
		logsCmd, testCmd, createAdminCmd, cleanupOrphansCmd, versionCmd)

	config.AddEnvFileFlag(deployCmd, statusCmd)

	// Add --debug flag
	logger.AddLogFlag(deployCmd, doctorCmd, statusCmd, stopCmd, purgeCmd,
		logsCmd, testCmd, createAdminCmd, cleanupOrphansCmd)
}

// rootCmd represents the base command
// Usage: `pixelfort`
var rootCmd = &cobra.Command{
	Use:           "pixelfort",
	Short:         "Deployment tooling for the pixelfort photo backup service",
	Long:          style.CLIHeader("Pixelfort CLI", "Deploy and operate the pixelfort photo backup service"),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printer.Errorln(err.Error())
		logger.Errors(err)
		logger.PrintLogs()
		os.Exit(1)
	}
	// print log stack
	logger.PrintLogs()
}

// newComposeClient resolves the compose variant once and binds it to the
// pixelfort project and production manifest.
func newComposeClient() (*compose.Client, error) {
	tool, err := compose.Discover()
	if err != nil {
		return nil, err
	}
	return compose.NewClient(tool, projectName, compose.ProdComposeFile), nil
}
