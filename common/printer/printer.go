//nolint:forbidigo // Printer is used for operator friendly output to terminal
package printer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guumaster/logsymbols"
)

//nolint:gochecknoglobals // read only, initialize objects once for performance.
var (
	successStyle      = lipgloss.NewStyle().Bold(true)
	errorStyle        = lipgloss.NewStyle().Bold(true)
	headerStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	notificationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178")) // Bright yellow, good for warnings
)

func Successln(msg string) {
	fmt.Println(successStyle.Render(string(logsymbols.Success) + " " + msg))
}

func Successf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	msg := successStyle.Render(string(logsymbols.Success) + " " + fmt.Sprintf(newFormat, args...))
	fmt.Print(msg)
	NewLine(linesRemoved)
}

func Errorln(msg string) {
	fmt.Println(errorStyle.Render(string(logsymbols.Error) + " " + msg))
}

func Errorf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	msg := errorStyle.Render(string(logsymbols.Error) + " " + fmt.Sprintf(newFormat, args...))
	fmt.Print(msg)
	NewLine(linesRemoved)
}

func Info(msg string) {
	fmt.Print(msg)
}

func Infoln(msg string) {
	fmt.Println(msg)
}

func Infof(format string, args ...any) {
	fmt.Printf(format, args...)
}

func Headerln(msg string) {
	fmt.Println(headerStyle.Render(msg))
}

func Notificationln(msg string) {
	fmt.Println(notificationStyle.Render(msg))
}

func Notificationf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	msg := notificationStyle.Render(fmt.Sprintf(newFormat, args...))
	fmt.Print(msg)
	NewLine(linesRemoved)
}

func NewLine(numberOfLines int) {
	if numberOfLines <= 0 {
		return
	}
	fmt.Print(strings.Repeat("\n", numberOfLines))
}

// trimAndCountTrailingNewlines trims trailing newlines from a string and returns the count.
// Used for stylized output to ensure the cursor is reset properly.
func trimAndCountTrailingNewlines(s string) (string, int) {
	if s == "" {
		return "", 0
	}

	count := 0
	i := len(s)
	for i > 0 && s[i-1] == '\n' {
		i--
		count++
	}
	return s[:i], count
}
