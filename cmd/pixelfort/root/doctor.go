package root

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pixelfort/pixelfort-cli/common/dependency"
	"github.com/pixelfort/pixelfort-cli/common/logger"
	"github.com/pixelfort/pixelfort-cli/tea/style"
)

// DoctorDeps are every tool a deployment may need. Only one of the two
// compose variants has to be present.
var DoctorDeps = []dependency.Dependency{
	dependency.Docker,
	dependency.DockerDaemon,
	dependency.DockerCompose,
	dependency.DockerComposeLegacy,
}

/////////////////
// Cobra Setup //
/////////////////

// doctorCmd checks that required deployment tools are installed
// Usage: `pixelfort doctor`
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required deployment tools are installed",
	Long: `Check that required deployment tools are installed.

Pixelfort CLI requires the following tools to be installed:
- Docker (with a running daemon)
- Docker Compose (the plugin, or the legacy docker-compose binary)`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)
		p := tea.NewProgram(NewDoctorModel())
		_, err := p.Run()
		return err
	},
}

//////////////////////
// Bubble Tea Model //
//////////////////////

type DependencyStatus struct {
	dependency.Dependency
	IsInstalled bool
}

type checkDependenciesMsg struct {
	Err       error
	DepStatus []DependencyStatus
}

type DoctorModel struct {
	DepStatus    []DependencyStatus
	DepStatusErr error
}

func NewDoctorModel() DoctorModel {
	return DoctorModel{}
}

// checkDependenciesCmd iterates through required dependencies and reports
// which ones are missing.
func checkDependenciesCmd() tea.Msg {
	var res []DependencyStatus
	var resErr error
	for _, dep := range DoctorDeps {
		err := dep.Check()
		res = append(res, DependencyStatus{
			Dependency:  dep,
			IsInstalled: err == nil,
		})
		resErr = errors.Join(resErr, err)
	}

	return checkDependenciesMsg{
		Err:       resErr,
		DepStatus: res,
	}
}

//////////////////////////
// Bubble Tea Lifecycle //
//////////////////////////

// Init returns an initial command for the application to run
func (m DoctorModel) Init() tea.Cmd {
	return checkDependenciesCmd
}

// Update handles incoming events and updates the model accordingly
func (m DoctorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case checkDependenciesMsg:
		m.DepStatus = msg.DepStatus
		m.DepStatusErr = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

// View renders the model to the screen
func (m DoctorModel) View() string {
	depList, help := printDependencyStatus(m.DepStatus)
	out := style.Container.Render("--- Pixelfort Doctor ---") + "\n\n"
	out += "Checking deployment tools...\n"
	out += depList + "\n" + help + "\n"
	return out
}

// printDependencyStatus returns a string with dependency status list and
// help messages for the missing ones.
func printDependencyStatus(depStatus []DependencyStatus) (string, string) {
	var depList string
	var help string
	for _, dep := range depStatus {
		if dep.IsInstalled {
			depList += style.TickIcon.Render() + " " + dep.Name + "\n"
		} else {
			depList += style.CrossIcon.Render() + " " + dep.Name + "\n"
			help += dep.Help + "\n"
		}
	}
	return depList, help
}
