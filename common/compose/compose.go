package compose

import (
	"strings"

	"github.com/magefile/mage/sh"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
)

const (
	// ProdComposeFile is the production manifest every compose action targets.
	ProdComposeFile = "docker-compose.prod.yml"

	// APIService is the long-lived service container of the pixelfort stack.
	APIService = "api"
)

// Tool identifies the compose-capable CLI resolved once during preflight.
// All later stages go through the same handle, whichever variant was found.
type Tool struct {
	Name   string
	args   []string
	legacy bool
}

var (
	pluginTool = Tool{Name: "docker compose", args: []string{"docker", "compose"}}
	legacyTool = Tool{Name: "docker-compose", args: []string{"docker-compose"}, legacy: true}
)

// Discover finds a compose-capable tool, preferring the modern plugin over
// the legacy standalone binary.
func Discover() (Tool, error) {
	if err := dependency.DockerCompose.Check(); err == nil {
		return pluginTool, nil
	}
	logger.Debug("docker compose plugin not found, trying legacy docker-compose")
	if err := dependency.DockerComposeLegacy.Check(); err == nil {
		return legacyTool, nil
	}
	return Tool{}, eris.New("no compose-capable tool found\n" + dependency.DockerCompose.Help)
}

// Client runs compose actions against a fixed project and manifest.
type Client struct {
	tool    Tool
	project string
	file    string
}

func NewClient(tool Tool, project, file string) *Client {
	return &Client{
		tool:    tool,
		project: project,
		file:    file,
	}
}

func (c *Client) ToolName() string {
	return c.tool.Name
}

// composeArgs prefixes the project and manifest flags shared by every action.
func (c *Client) composeArgs(args ...string) []string {
	res := append([]string{}, c.tool.args[1:]...)
	res = append(res, "-p", c.project, "-f", c.file)
	return append(res, args...)
}

func (c *Client) run(args ...string) error {
	return sh.RunV(c.tool.args[0], c.composeArgs(args...)...)
}

func (c *Client) output(args ...string) (string, error) {
	return sh.Output(c.tool.args[0], c.composeArgs(args...)...)
}

// Build builds the images declared in the manifest.
func (c *Client) Build() error {
	if err := c.run("build"); err != nil {
		return eris.Wrap(err, "compose build failed")
	}
	return nil
}

// Up brings the stack up in detached mode.
func (c *Client) Up() error {
	if err := c.run("up", "-d"); err != nil {
		return eris.Wrap(err, "compose up failed")
	}
	return nil
}

// Stop stops the running containers without removing volumes.
func (c *Client) Stop() error {
	return c.run("stop")
}

// Down stops and removes containers; removes volumes too when wipe is set.
func (c *Client) Down(wipe bool) error {
	args := []string{"down"}
	if wipe {
		args = append(args, "--volumes")
	}
	return c.run(args...)
}

// Logs streams service logs. Follows the log output when follow is set.
func (c *Client) Logs(service string, follow bool) error {
	args := []string{"logs"}
	if follow {
		args = append(args, "-f")
	}
	return c.run(append(args, service)...)
}

// RunOneShot runs a command in a fresh container of the given service and
// discards the container afterwards.
func (c *Client) RunOneShot(service string, cmdArgs ...string) error {
	args := append([]string{"run", "--rm", service}, cmdArgs...)
	return c.run(args...)
}

// Exec runs a command inside the already-running service container.
// The returned error carries the command's exit status.
func (c *Client) Exec(service string, cmdArgs ...string) error {
	args := append([]string{"exec", "-T", service}, cmdArgs...)
	return c.run(args...)
}

// ServiceRunning queries the process-status listing for a running indicator
// of the given service.
func (c *Client) ServiceRunning(service string) (bool, error) {
	if c.tool.legacy {
		// Legacy docker-compose has no JSON output. Fall back to scanning
		// the tabular listing for the Up marker.
		out, err := c.output("ps", service)
		if err != nil {
			return false, eris.Wrap(err, "compose ps failed")
		}
		return strings.Contains(out, " Up"), nil
	}

	out, err := c.output("ps", "--format", "json", service)
	if err != nil {
		return false, eris.Wrap(err, "compose ps failed")
	}
	return parseRunning(out, service), nil
}

// parseRunning reads the plugin's ps output: one JSON object per line on
// recent releases, a JSON array on older ones.
func parseRunning(out, service string) bool {
	running := false
	check := func(entry gjson.Result) bool {
		if entry.Get("Service").String() == service &&
			entry.Get("State").String() == "running" {
			running = true
			return false // stop iterating
		}
		return true
	}

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parsed := gjson.Parse(line)
		if parsed.IsArray() {
			parsed.ForEach(func(_, entry gjson.Result) bool { return check(entry) })
		} else if !check(parsed) {
			break
		}
	}
	return running
}
