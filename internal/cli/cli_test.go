package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/mpgen/internal/config"
	"github.com/modu-ai/mpgen/internal/manifest"
	"github.com/modu-ai/mpgen/internal/template"
	"github.com/modu-ai/mpgen/pkg/version"
)

const appJSON = `{
  "pages": ["pages/index/index"],
  "subPackages": [
    {"root": "packageA/order", "pages": ["pages/list/list"]}
  ]
}
`

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.json"), []byte(appJSON), 0o644))
	return dir
}

// runCLI executes a fresh command tree with fresh dependencies.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	SetDeps(nil)
	t.Cleanup(func() { SetDeps(nil) })

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInit_HeadlessPage(t *testing.T) {
	entry := newProject(t)

	stdout, _, err := runCLI(t, "init", "bar", "--non-interactive", "--no-color",
		"--flavor", "weapp", "--kind", "page", "--entry", entry)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Page created")
	assert.Contains(t, stdout, "pages/bar/bar")

	for _, ext := range []string{".js", ".json", ".wxml", ".wxss"} {
		assert.FileExists(t, filepath.Join(entry, "pages", "bar", "bar"+ext))
	}

	m, err := manifest.Load(entry)
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/index/index", "pages/bar/bar"}, m.Pages())
}

func TestInit_SubPackagePage(t *testing.T) {
	entry := newProject(t)

	_, _, err := runCLI(t, "init", "--non-interactive", "--name", "pay",
		"--flavor", "alipay", "--kind", "page", "--module", "order", "--entry", entry)
	require.NoError(t, err)

	for _, ext := range []string{".js", ".json", ".axml", ".acss"} {
		assert.FileExists(t, filepath.Join(entry, "packageA", "order", "pages", "pay", "pay"+ext))
	}
	m, err := manifest.Load(entry)
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/list/list", "pages/pay/pay"}, m.SubPackages()[0].Pages)
}

func TestInit_PageComponent(t *testing.T) {
	entry := newProject(t)
	before, err := os.ReadFile(filepath.Join(entry, "app.json"))
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "init", "badge", "--non-interactive", "--flavor", "weapp",
		"--kind", "component", "--scope", "page", "--parent-page", "list", "--entry", entry)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Component created")
	assert.FileExists(t, filepath.Join(entry, "packageA", "order", "pages", "list", "components", "badge", "badge.js"))

	after, err := os.ReadFile(filepath.Join(entry, "app.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInit_PageAlreadyExists(t *testing.T) {
	entry := newProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(entry, "pages", "index"), 0o755))

	stdout, _, err := runCLI(t, "init", "index", "--non-interactive", "--flavor", "weapp", "--kind", "page", "--entry", entry)
	require.NoError(t, err, "non-fatal failures exit zero")
	assert.Contains(t, stdout, "Page not created")
	assert.Contains(t, stdout, "already exists")
}

func TestInit_MissingManifest(t *testing.T) {
	_, stderr, err := runCLI(t, "init", "bar", "--non-interactive", "--entry", t.TempDir())
	assert.True(t, errors.Is(err, manifest.ErrManifestNotFound), "got %v", err)
	assert.Contains(t, stderr, "Cannot read app.json")
	assert.NotContains(t, stderr, "Error:", "cobra must not print the error twice")
}

func TestInit_MissingTemplate(t *testing.T) {
	entry := newProject(t)

	_, _, err := runCLI(t, "init", "bar", "--non-interactive", "--flavor", "weapp", "--kind", "page",
		"--entry", entry, "--templates", t.TempDir())
	assert.True(t, errors.Is(err, template.ErrTemplateNotFound), "got %v", err)
	assert.NoDirExists(t, filepath.Join(entry, "pages", "bar"))
}

func TestInit_MissingAnswer(t *testing.T) {
	entry := newProject(t)

	stdout, _, err := runCLI(t, "init", "--non-interactive", "--entry", entry)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Incomplete answers")
	assert.Contains(t, stdout, "name")
}

func TestInit_InvalidName(t *testing.T) {
	entry := newProject(t)

	stdout, _, err := runCLI(t, "init", "a.b", "--non-interactive", "--entry", entry)
	require.NoError(t, err)
	assert.Contains(t, stdout, "forbidden character")
	assert.NoDirExists(t, filepath.Join(entry, "pages", "a.b"))
}

func TestInit_DryRun(t *testing.T) {
	entry := newProject(t)

	stdout, _, err := runCLI(t, "init", "bar", "--non-interactive", "--dry-run", "--flavor", "weapp", "--entry", entry)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dry run")
	assert.Contains(t, stdout, "bar.wxml")
	assert.NoDirExists(t, filepath.Join(entry, "pages", "bar"))
}

func TestInit_InvalidConfig(t *testing.T) {
	_, _, err := runCLI(t, "init", "--log-level", "trace", "--entry", newProject(t))
	assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
}

func TestList_Raw(t *testing.T) {
	entry := newProject(t)

	stdout, _, err := runCLI(t, "list", "--raw", "--entry", entry)
	require.NoError(t, err)
	assert.Contains(t, stdout, "## Main bundle")
	assert.Contains(t, stdout, "| index | `pages/index/index` |")
	assert.Contains(t, stdout, "## Sub-package `packageA/order`")
	assert.Contains(t, stdout, "| list | `pages/list/list` |")
}

func TestList_Rendered(t *testing.T) {
	entry := newProject(t)

	stdout, _, err := runCLI(t, "list", "--no-color", "--entry", entry)
	require.NoError(t, err)
	assert.Contains(t, stdout, "pages/index/index")
	assert.Contains(t, stdout, "packageA/order")
}

func TestList_MissingManifest(t *testing.T) {
	_, _, err := runCLI(t, "list", "--entry", t.TempDir())
	assert.True(t, errors.Is(err, manifest.ErrManifestNotFound), "got %v", err)
}

func TestManifestMarkdown_EmptyBundle(t *testing.T) {
	m, err := manifest.Parse([]byte(`{"pages": [], "subPackages": [{"root": "pkg", "pages": []}]}`))
	require.NoError(t, err)
	md := manifestMarkdown(m)
	assert.Equal(t, 2, strings.Count(md, "_no pages_"))
}

func TestConfigCmd(t *testing.T) {
	stdout, _, err := runCLI(t, "config", "--entry", "src", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "entry: src")
	assert.Contains(t, stdout, "log_level: debug")
	assert.Contains(t, stdout, "components_dir: components")
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		stdout, _, err := runCLI(t, flag)
		require.NoError(t, err)
		want := "mpgen " + version.GetVersion() + " (commit: " + version.GetCommit() + ", built: " + version.GetDate() + ")\n"
		assert.Equal(t, want, stdout)
	}
}
