package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/internal/config"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/showcase"
)

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestComponentsTable(t *testing.T) {
	stdout, _, err := executeCommand("components")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.Contains(t, stdout, "badge.variants")
	require.Contains(t, stdout, "footer.social")

	reg, err := showcase.NewRegistry()
	require.NoError(t, err)
	require.Len(t, lines, len(reg.Names())+1)
}

func TestComponentsJSON(t *testing.T) {
	stdout, _, err := executeCommand("components", "--json")
	require.NoError(t, err)

	var entries []componentEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		require.NotEmpty(t, entry.Name)
		require.NotEmpty(t, entry.Family)
	}
}

func TestComponentsYAML(t *testing.T) {
	stdout, _, err := executeCommand("components", "--yaml")
	require.NoError(t, err)

	var entries []componentEntry
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &entries))

	reg, err := showcase.NewRegistry()
	require.NoError(t, err)
	require.Len(t, entries, len(reg.Names()))
	require.Equal(t, reg.Definitions()[0].Name, entries[0].Name)

	_, _, err = executeCommand("components", "--json", "--yaml")
	require.Error(t, err)
}

func TestRenderPage(t *testing.T) {
	stdout, _, err := executeCommand("render", "--locale", "en")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "<!DOCTYPE html>"))
	require.Contains(t, stdout, `<html lang="en">`)
	require.Equal(t, 1, strings.Count(stdout, `data-uikit-script="flyout"`))
}

func TestRenderFragment(t *testing.T) {
	stdout, _, err := executeCommand("render", "--component", "flyout.menus", "--scripts", "deferred")
	require.NoError(t, err)
	require.NotContains(t, stdout, "<html")
	require.Equal(t, 1, strings.Count(stdout, `data-uikit-script="flyout"`))

	_, _, err = executeCommand("render", "--component", "nope")
	require.ErrorIs(t, err, render.ErrUnknownComponent)
}

func TestRenderToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "showcase.html")
	stdout, stderr, err := executeCommand("render", "--out", out, "--log-format", "json")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, `"path":"`+out+`"`)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uikit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: en\nlog:\n  level: warn\n"), 0o644))

	stdout, _, err := executeCommand("render", "--config", path, "--component", "badge.variants")
	require.NoError(t, err)
	require.Contains(t, stdout, "<span")

	stdout, _, err = executeCommand("render", "--config", path, "--locale", "fr")
	require.NoError(t, err)
	require.Contains(t, stdout, `<html lang="fr">`)
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := executeCommand("render", "--locale", "de")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = executeCommand("render", "--scripts", "async")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = executeCommand("serve", "--addr", "nope")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = executeCommand("render", "--theme", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
