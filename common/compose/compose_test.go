package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeArgsPrefixProjectAndFile(t *testing.T) {
	tests := []struct {
		name string
		tool Tool
		want []string
	}{
		{
			name: "plugin variant",
			tool: pluginTool,
			want: []string{"compose", "-p", "pixelfort", "-f", ProdComposeFile, "up", "-d"},
		},
		{
			name: "legacy variant",
			tool: legacyTool,
			want: []string{"-p", "pixelfort", "-f", ProdComposeFile, "up", "-d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.tool, "pixelfort", ProdComposeFile)
			assert.Equal(t, tt.want, c.composeArgs("up", "-d"))
		})
	}
}

func TestToolName(t *testing.T) {
	assert.Equal(t, "docker compose", NewClient(pluginTool, "p", "f").ToolName())
	assert.Equal(t, "docker-compose", NewClient(legacyTool, "p", "f").ToolName())
}

func TestParseRunning(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		service string
		want    bool
	}{
		{
			name:    "line-delimited running",
			out:     `{"Service":"api","State":"running","Name":"pixelfort-api-1"}`,
			service: "api",
			want:    true,
		},
		{
			name: "line-delimited multiple services",
			out: `{"Service":"db","State":"running"}
{"Service":"api","State":"restarting"}`,
			service: "api",
			want:    false,
		},
		{
			name:    "array output from older plugin releases",
			out:     `[{"Service":"api","State":"running"},{"Service":"db","State":"exited"}]`,
			service: "api",
			want:    true,
		},
		{
			name:    "service missing from listing",
			out:     `{"Service":"db","State":"running"}`,
			service: "api",
			want:    false,
		},
		{
			name:    "empty listing",
			out:     "",
			service: "api",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRunning(tt.out, tt.service))
		})
	}
}
