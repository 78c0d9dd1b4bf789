package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/doctestgen/core/output"
	"github.com/gaurav-prasanna/doctestgen/core/pipeline"
)

const entrypoints = "```rust template=\"core\"\nstruct X;\n```\n\n```rust\nstruct Y;\n```\n"

func writeDoc(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// runCLI executes a freshly built command tree, so no flag or setting
// survives from one call to the next.
func runCLI(args ...string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenerateCommand(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeDoc(t, root, "pages/entrypoints.mdx", entrypoints)

	require.NoError(t, runCLI("generate", "--root", root, "--out", out))

	data, err := os.ReadFile(filepath.Join(out, "tests", "pages_entrypoints_mdx_core_0.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "struct X;")
	assert.NotContains(t, string(data), "struct Y;")
}

func TestGenerateCommandDryRunDoesNotLeak(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "a.mdx", entrypoints)

	dryOut := t.TempDir()
	require.NoError(t, runCLI("generate", "--root", root, "--out", dryOut, "--dry-run"))
	entries, err := os.ReadDir(dryOut)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// A later invocation without --dry-run writes again.
	out := t.TempDir()
	require.NoError(t, runCLI("generate", "--root", root, "--out", out))
	_, err = os.Stat(filepath.Join(out, "tests", "a_mdx_core_0.rs"))
	assert.NoError(t, err)
}

func TestGenerateCommandUnknownTemplate(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeDoc(t, root, "a.mdx", "```go template=\"does-not-exist\"\nfunc A() {}\n```\n")

	err := runCLI("generate", "--root", root, "--out", out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnknownTemplate))
	assert.Contains(t, errors.FlattenHints(err), "core")

	entries, err := os.ReadDir(filepath.Join(out, "go_tests"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCommandMissingConfigFile(t *testing.T) {
	err := runCLI("generate", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLinksCommandBrokenLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	root := t.TempDir()
	writeDoc(t, root, "ok.mdx", "[fine]("+srv.URL+"/fine)\n")
	require.NoError(t, runCLI("links", "--root", root, "--timeout", "2s"))

	writeDoc(t, root, "broken.mdx", "![gone]("+srv.URL+"/gone)\n")
	err := runCLI("links", "--root", root, "--timeout", "2s")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pipeline.ErrBrokenLink))
}
