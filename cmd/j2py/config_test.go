package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_PrintsDefaultYAML(t *testing.T) {
	t.Parallel()

	cmd := configCmd()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	require.NoError(t, cmd.RunE(cmd, nil))

	assert.Contains(t, buf.String(), "target_python:")
	assert.Contains(t, buf.String(), "port: 8080")
}
