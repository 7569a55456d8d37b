package main

import (
	"github.com/pixelfort/pixelfort-cli/cmd/pixelfort/root"
	_ "github.com/pixelfort/pixelfort-cli/common/logger"
)

// This variable will be overridden by ldflags during build
// Example : go build -ldflags "-X main.AppVersion=1.0.0"
var AppVersion string

func init() {
	// Set default app version in case not provided by ldflags
	if AppVersion == "" {
		AppVersion = "dev"
	}
	root.AppVersion = AppVersion
}

func main() {
	root.Execute()
}
