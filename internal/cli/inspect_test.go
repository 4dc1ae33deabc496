package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectText(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "inspect", "--re", "3", "--im", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "value:      3 + 4*I\n")
	assert.Contains(t, out, "conjugate:  3 - 4*I\n")
	assert.Contains(t, out, "abs:        5\n")
	assert.Contains(t, out, "polar:      5*exp(I*")
	assert.Contains(t, out, "ln:         1.6094379124341003 + ")
}

func TestInspectJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "inspect", "--re", "-1", "--format", "json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "-1 + 0*I", got["value"])
	assert.Equal(t, "-1 - 0*I", got["conjugate"])
	assert.Equal(t, "1", got["abs"])
	assert.Equal(t, "3.141592653589793", got["arg"])
}

func TestInspectZero(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "inspect", "--format", "json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "-Inf + 0*I", got["ln"])
	assert.Equal(t, "1 + 0*I", got["exp"])
}

func TestInspectRejectsArgs(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "inspect", "3+4i")
	require.Error(t, err)
}
