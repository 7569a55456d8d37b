package dependency

import (
	"errors"
	"os/exec"

	"github.com/rotisserie/eris"
)

var (
	Docker = Dependency{
		Name: "Docker",
		Args: []string{"docker", "--version"},
		Help: `Docker is required to build and run the pixelfort service.
Learn how to install Docker: https://docs.docker.com/engine/install/`,
	}
	DockerDaemon = Dependency{
		Name: "Docker daemon is running",
		Args: []string{"docker", "info"},
		Help: `Docker daemon needs to be running.
If you use Docker Desktop, make sure that you have ran it`,
	}
	DockerCompose = Dependency{
		Name: "Docker Compose (plugin)",
		Args: []string{"docker", "compose", "version"},
		Help: `A compose-capable tool is required to deploy the pixelfort service.
Learn how to install Docker Compose: https://docs.docker.com/compose/install/`,
	}
	DockerComposeLegacy = Dependency{
		Name: "docker-compose (legacy)",
		Args: []string{"docker-compose", "--version"},
		Help: `A compose-capable tool is required to deploy the pixelfort service.
Learn how to install Docker Compose: https://docs.docker.com/compose/install/`,
	}
	AlwaysFail = Dependency{
		Name: "Always fails",
		Args: []string{"false"},
		Help: `This dependency check will always fail. It can be used for testing.`,
	}
)

type Dependency struct {
	Name string
	Args []string
	Help string
}

// Check runs the probe command. A fresh exec.Cmd is built on every call so
// the same dependency can be checked more than once per process.
func (d Dependency) Check() error {
	cmd := exec.Command(d.Args[0], d.Args[1:]...) //nolint:gosec // args are fixed at compile time
	if err := cmd.Run(); err != nil {
		return eris.Wrapf(err, "dependency check %q failed with", d.Name)
	}
	return nil
}

func Check(deps ...Dependency) error {
	errs := make([]error, 0, len(deps))
	for _, dep := range deps {
		errs = append(errs, dep.Check())
	}
	return errors.Join(errs...)
}
