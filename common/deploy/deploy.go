package deploy

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/pixelfort/pixelfort-cli/common/compose"
	"github.com/pixelfort/pixelfort-cli/common/config"
	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/common/printer"
)

// Compose is the capability-bearing handle resolved once during tool
// discovery. Every later stage goes through it, whichever compose variant
// was found on the host.
type Compose interface {
	ToolName() string
	Build() error
	Up() error
	RunOneShot(service string, cmdArgs ...string) error
	ServiceRunning(service string) (bool, error)
}

// DefaultStorageDirs are the host paths the service containers bind-mount.
// Paths match the app's STORAGE_PATH and DATABASE_URL defaults.
var DefaultStorageDirs = []string{"storage/photos", "storage/db"}

// readLine is a var so tests can stub operator input.
var readLine = func() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", eris.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(input), nil
}

// Deployer runs the deployment pipeline: preflight, build, initialize,
// start, verify. Zero-valued optional fields fall back to defaults, so the
// callers only wire the collaborators.
type Deployer struct {
	Preflight       []dependency.Dependency
	DiscoverCompose func() (Compose, error)
	LoadConfig      func() (*config.Config, error)

	Confirm       func(prompt string) (bool, error)
	StorageDirs   []string
	ReadyTimeout  time.Duration
	HealthTimeout time.Duration
	HTTPClient    *http.Client
}

// Run executes the pipeline stages sequentially and fail-fast: the first
// hard failure aborts all later stages. Stage 7 (verification) is advisory
// and never produces a fatal outcome.
//
//nolint:funlen // the pipeline is a straight line of stages
func (d *Deployer) Run(ctx context.Context) (Outcome, error) {
	// Stage 1: tool discovery.
	if err := dependency.Check(d.Preflight...); err != nil {
		return PreflightFailed, err
	}
	comp, err := d.DiscoverCompose()
	if err != nil {
		return PreflightFailed, err
	}
	logger.Infof("using compose tool %q", comp.ToolName())

	// Stage 2: configuration validation. The config is loaded once and
	// passed along, never re-read.
	cfg, err := d.LoadConfig()
	if err != nil {
		return PreflightFailed, err
	}
	if !cfg.IsProduction() {
		printer.Notificationf("ENVIRONMENT is %q, expected %q.\n", cfg.Environment, config.EnvProduction)
		ok, confirmErr := d.confirm("Continue anyway? (y/N): ")
		if confirmErr != nil {
			return PreflightFailed, confirmErr
		}
		if !ok {
			return ConfirmationDeclined, eris.New("deployment cancelled by operator")
		}
	}

	// Stage 3: build.
	printer.Infof("Building %s images...\n", cfg.AppName)
	if err := comp.Build(); err != nil {
		return BuildFailed, err
	}

	// Stage 4: storage preparation. Create-if-absent, idempotent.
	for _, dir := range d.storageDirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return StartFailed, eris.Wrapf(err, "failed to create storage directory %s", dir)
		}
	}

	// Stage 5: database initialization in a throwaway container.
	printer.Infoln("Initializing database...")
	if err := comp.RunOneShot(compose.APIService, "python", "init_db.py"); err != nil {
		return StartFailed, eris.Wrap(err, "database initialization failed")
	}

	// Stage 6: bring the stack up detached.
	printer.Infoln("Starting services...")
	if err := comp.Up(); err != nil {
		return StartFailed, err
	}
	printer.Successf("Deployed. Service URL: %s\n", cfg.ServiceURL())

	// Stage 7: verification. Advisory only, the pipeline has already
	// committed its actions; failures here change status text, not the
	// exit code.
	printer.Infoln("Waiting for the api service to report running...")
	if err := waitForService(ctx, comp, compose.APIService, d.readyTimeout()); err != nil {
		logger.Debugf("readiness wait: %v", err)
		printer.Notificationln("Timed out waiting for the api service to report running.")
		printer.Notificationln("Inspect it with `pixelfort status` and `pixelfort logs`.")
		return TimedOut, nil
	}
	if err := probeHealth(ctx, d.httpClient(), cfg.HealthURL(), d.healthTimeout()); err != nil {
		logger.Debugf("health probe: %v", err)
		printer.Notificationf("Health check at %s is still pending, the service may be initializing.\n", cfg.HealthURL())
		return HealthPending, nil
	}
	printer.Successln("Health check PASSED")

	return Success, nil
}

func (d *Deployer) confirm(prompt string) (bool, error) {
	if d.Confirm != nil {
		return d.Confirm(prompt)
	}
	printer.Info(prompt)
	input, err := readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(input, "y"), nil
}

func (d *Deployer) storageDirs() []string {
	if d.StorageDirs != nil {
		return d.StorageDirs
	}
	return DefaultStorageDirs
}

func (d *Deployer) readyTimeout() time.Duration {
	if d.ReadyTimeout > 0 {
		return d.ReadyTimeout
	}
	return defaultReadyTimeout
}

func (d *Deployer) healthTimeout() time.Duration {
	if d.HealthTimeout > 0 {
		return d.HealthTimeout
	}
	return defaultHealthTimeout
}

func (d *Deployer) httpClient() *http.Client {
	if d.HTTPClient != nil {
		return d.HTTPClient
	}
	return &http.Client{Timeout: 5 * time.Second}
}
