package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parseTestSource = `class Point {
    int x;
}
`

func runParseCmd(t *testing.T, format string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "Point.java")
	require.NoError(t, os.WriteFile(path, []byte(parseTestSource), 0o600))

	cmd := parseCmd()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, runParse(cmd, path, format))

	return buf.String()
}

func TestRunParse_Tree(t *testing.T) {
	t.Parallel()

	out := runParseCmd(t, "tree")
	assert.Contains(t, out, `ClassDecl("Point")`)
}

func TestRunParse_Table(t *testing.T) {
	t.Parallel()

	out := runParseCmd(t, "table")
	assert.Contains(t, out, "ClassDecl")
	assert.Contains(t, out, "nodes")
}

func TestRunParse_JSON(t *testing.T) {
	t.Parallel()

	out := runParseCmd(t, "json")
	assert.Contains(t, out, `"Kind": "ClassDecl"`)
}

func TestRunParse_YAML(t *testing.T) {
	t.Parallel()

	out := runParseCmd(t, "yaml")
	assert.Contains(t, out, "kind: ClassDecl")
}

func TestRunParse_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Point.java")
	require.NoError(t, os.WriteFile(path, []byte(parseTestSource), 0o600))

	err := runParse(parseCmd(), path, "xml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
