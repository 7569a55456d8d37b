package deploy

import (
	"github.com/stretchr/testify/mock"
)

// MockCompose is a testify mock of the Compose handle.
type MockCompose struct {
	mock.Mock
}

var _ Compose = (*MockCompose)(nil)

func (m *MockCompose) ToolName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCompose) Build() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCompose) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCompose) RunOneShot(service string, cmdArgs ...string) error {
	args := m.Called(service, cmdArgs)
	return args.Error(0)
}

func (m *MockCompose) ServiceRunning(service string) (bool, error) {
	args := m.Called(service)
	return args.Bool(0), args.Error(1)
}
