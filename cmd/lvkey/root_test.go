// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvplot/keyconf"
)

// execute runs the root command with args and a silent logger.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := newLogger
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	t.Cleanup(func() { newLogger = prev })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRoot_Defaults(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "set key on \n", out)
}

func TestRoot_ConfigAndOverrides(t *testing.T) {
	path := writeFile(t, "legend.toml", "stacking = \"vertically\"\ntitle = \"File\"\n[position]\nvertical = \"top\"\nhorizontal = \"right\"\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "set key on inside top right vertically title 'File' \n", out)

	out, err = execute(t, "--title", "Flag", "--box", path)
	require.NoError(t, err)
	assert.Equal(t, "set key on inside top right vertically title 'Flag' box \n", out)

	out, err = execute(t, "--hide", path)
	require.NoError(t, err)
	assert.Equal(t, "set key off\n", out)
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "legend.ini")
	assert.ErrorIs(t, err, keyconf.ErrUnsupportedFormat)

	_, err = execute(t, "a.toml", "b.toml")
	assert.Error(t, err, "at most one config file")
}
