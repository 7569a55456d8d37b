package deploy

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestOutcomeFatal(t *testing.T) {
	tests := []struct {
		outcome Outcome
		fatal   bool
	}{
		{Success, false},
		{PreflightFailed, true},
		{ConfirmationDeclined, true},
		{BuildFailed, true},
		{StartFailed, true},
		{TimedOut, false},
		{HealthPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tt.outcome.Fatal(), tt.fatal)
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, Success.String(), "success")
	assert.Equal(t, Outcome(99).String(), "unknown")
}
