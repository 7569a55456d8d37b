package root

import (
	"bufio"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/pixelfort/pixelfort-cli/common/printer"
)

// getInput is a var so tests can stub operator input.
var getInput = func() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", eris.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(input), nil
}

// confirm prompts the operator with a y/N question.
func confirm(prompt string) (bool, error) {
	printer.Info(prompt + " (y/N): ")
	input, err := getInput()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(input, "y"), nil
}
