package root

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelfort/pixelfort-cli/common/dependency"
)

func TestCommandsAreRegistered(t *testing.T) {
	want := []string{
		"deploy", "doctor", "status", "stop", "purge",
		"logs", "test", "create-admin", "cleanup-orphans", "version",
	}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name], "command %q is not registered", name)
	}
}

func TestDoctorModelQuitsOnCheckResult(t *testing.T) {
	m := NewDoctorModel()

	msg := checkDependenciesMsg{
		DepStatus: []DependencyStatus{
			{Dependency: dependency.Docker, IsInstalled: true},
			{Dependency: dependency.DockerCompose, IsInstalled: false},
		},
	}

	updated, cmd := m.Update(msg)
	require.NotNil(t, cmd, "model must quit after receiving the check result")

	model, ok := updated.(DoctorModel)
	require.True(t, ok)
	view := model.View()
	assert.Contains(t, view, dependency.Docker.Name)
	assert.Contains(t, view, dependency.DockerCompose.Name)
	// Missing dependencies show installation guidance.
	assert.Contains(t, view, "https://docs.docker.com/compose/install/")
}

func TestDoctorModelQuitsOnCtrlC(t *testing.T) {
	m := NewDoctorModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestConfirmReadsOperatorInput(t *testing.T) {
	originalGetInput := getInput
	defer func() { getInput = originalGetInput }()

	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"", false},
		{"yes", false},
	}

	for _, tt := range tests {
		getInput = func() (string, error) { return tt.input, nil }
		got, err := confirm("continue?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
