package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFailureCarriesName(t *testing.T) {
	err := AlwaysFail.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), AlwaysFail.Name)
}

func TestCheckIsRepeatable(t *testing.T) {
	dep := Dependency{
		Name: "true",
		Args: []string{"true"},
	}

	// A dependency must be checkable more than once per process.
	require.NoError(t, dep.Check())
	require.NoError(t, dep.Check())
}

func TestCheckJoinsErrors(t *testing.T) {
	ok := Dependency{Name: "true", Args: []string{"true"}}

	err := Check(ok, AlwaysFail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), AlwaysFail.Name)

	assert.NoError(t, Check(ok, ok))
}
