package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"core", "execute", "go"}, Builtin().Names())
}

func TestBuiltinTemplatesHaveOneMarker(t *testing.T) {
	for _, name := range Builtin().Names() {
		tpl, ok := Builtin().Lookup(name)
		require.True(t, ok)
		assert.Equal(t, 1, strings.Count(tpl.Body, Marker), "template %s", name)
	}
}

func TestLookupMissing(t *testing.T) {
	_, ok := Builtin().Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	tpl := Template{Name: "t", Body: "prefix {{code}} suffix"}
	assert.Equal(t, "prefix fn f() {} suffix", tpl.Render("fn f() {}"))
}

func TestRenderIsVerbatim(t *testing.T) {
	tpl := Template{Name: "t", Body: "<{{code}}>"}

	// Markers and escapes inside the code are not expanded again.
	assert.Equal(t, `<a {{code}} "\n" &amp;>`, tpl.Render(`a {{code}} "\n" &amp;`))
	assert.Equal(t, "<>", tpl.Render(""))
}

func TestCoreTemplateRendering(t *testing.T) {
	tpl, ok := Builtin().Lookup("core")
	require.True(t, ok)

	out := tpl.Render("struct X;\n")
	assert.Contains(t, out, "fn doctest() {\n  struct X;\n\n}\n")
	assert.NotContains(t, out, Marker)
}

func TestNewRegistryReplacesDuplicates(t *testing.T) {
	r := NewRegistry(
		Template{Name: "a", Body: "1 {{code}}"},
		Template{Name: "a", Body: "2 {{code}}"},
	)
	tpl, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "2 {{code}}", tpl.Body)
	assert.Equal(t, []string{"a"}, r.Names())
}
