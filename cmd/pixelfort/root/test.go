package root

import (
	"os"

	"github.com/magefile/mage/sh"
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/compose"
	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
)

// testCmd runs the pytest suite inside the running api container
// Usage: `pixelfort test`
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the pytest suite inside the running api container",
	Long: `Run the pytest suite inside the running api container with coverage
reporting enabled. The process exit code mirrors pytest's own.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return dependency.Check(dependency.Docker, dependency.DockerDaemon)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, err := newComposeClient()
		if err != nil {
			return err
		}

		err = client.Exec(compose.APIService,
			"pytest", "--cov=api", "--cov-report=term-missing", "tests/")
		if err != nil {
			printer.Errorln("Tests failed")
			logger.PrintLogs()
			// Mirror the test framework's own exit code.
			os.Exit(sh.ExitStatus(err))
		}

		printer.Successln("Tests passed")
		return nil
	},
}
