package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gotest.tools/v3/assert"
)

// cmdWithEnvFile creates a command that has the --env-file flag set to the given filename
func cmdWithEnvFile(t *testing.T, filename string) *cobra.Command {
	cmd := &cobra.Command{}
	AddEnvFileFlag(cmd)
	assert.NilError(t, cmd.Flags().Set(flagForEnvFile, filename))
	return cmd
}

func makeEnvFileAtTemp(t *testing.T, contents string) (filename string) {
	t.Helper()
	filename = filepath.Join(t.TempDir(), "env.production")
	assert.NilError(t, os.WriteFile(filename, []byte(contents), 0o600))
	return filename
}

func TestLoadMissingFileIsMissingConfig(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file"))
	assert.Check(t, eris.Is(err, ErrMissingEnvFile), "want ErrMissingEnvFile, got %v", err)
}

func TestLoadDefaultsPortTo8000(t *testing.T) {
	filename := makeEnvFileAtTemp(t, "ENVIRONMENT=production\n")
	cfg, err := Load(filename)
	assert.NilError(t, err)
	assert.Equal(t, cfg.APIPort, DefaultAPIPort)
	assert.Equal(t, cfg.ServiceURL(), "http://localhost:8000")
	assert.Equal(t, cfg.HealthURL(), "http://localhost:8000/health")
}

func TestLoadExplicitPortIsUsedEverywhere(t *testing.T) {
	filename := makeEnvFileAtTemp(t, "ENVIRONMENT=production\nAPI_PORT=9090\n")
	cfg, err := Load(filename)
	assert.NilError(t, err)
	assert.Equal(t, cfg.APIPort, 9090)
	assert.Equal(t, cfg.ServiceURL(), "http://localhost:9090")
	assert.Equal(t, cfg.HealthURL(), "http://localhost:9090/health")
}

func TestLoadPortOutOfRange(t *testing.T) {
	filename := makeEnvFileAtTemp(t, "API_PORT=70000\n")
	_, err := Load(filename)
	assert.ErrorContains(t, err, "out of range")
}

func TestLoadEnvironmentTag(t *testing.T) {
	tests := []struct {
		name           string
		contents       string
		wantProduction bool
	}{
		{
			name:           "production",
			contents:       "ENVIRONMENT=production\n",
			wantProduction: true,
		},
		{
			name:           "staging",
			contents:       "ENVIRONMENT=staging\n",
			wantProduction: false,
		},
		{
			name:           "no tag at all",
			contents:       "API_PORT=8000\n",
			wantProduction: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(makeEnvFileAtTemp(t, tt.contents))
			assert.NilError(t, err)
			assert.Equal(t, cfg.IsProduction(), tt.wantProduction)
		})
	}
}

func TestGetConfigUsesFlag(t *testing.T) {
	filename := makeEnvFileAtTemp(t, "ENVIRONMENT=production\nAPI_PORT=9090\n")
	cmd := cmdWithEnvFile(t, filename)
	cfg, err := GetConfig(cmd)
	assert.NilError(t, err)
	assert.Equal(t, cfg.File, filename)
	assert.Equal(t, cfg.APIPort, 9090)
}

func TestGetConfigDefaultFilename(t *testing.T) {
	cmd := &cobra.Command{}
	AddEnvFileFlag(cmd)
	_, err := GetConfig(cmd)
	// Default .env.production does not exist in the test working directory.
	assert.Check(t, eris.Is(err, ErrMissingEnvFile), "want ErrMissingEnvFile, got %v", err)
}

func TestConfigAppNameDefault(t *testing.T) {
	cfg, err := Load(makeEnvFileAtTemp(t, "ENVIRONMENT=production\n"))
	assert.NilError(t, err)
	assert.Equal(t, cfg.AppName, "pixelfort")
}
