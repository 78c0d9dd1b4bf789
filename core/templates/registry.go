// Package templates holds the templates that wrap a code sample into a
// compilable test file. Template bodies are embedded at build time and the
// registry never changes after init.
package templates

import (
	"embed"
	"path"
	"sort"
	"strings"
)

// Marker is the single substitution point in every template body.
const Marker = "{{code}}"

//go:embed tpl/*.tpl
var files embed.FS

// Template is a named template body.
type Template struct {
	Name string
	Body string
}

// Render substitutes code for the marker, verbatim.
func (t Template) Render(code string) string {
	return strings.Replace(t.Body, Marker, code, 1)
}

// Registry maps template names to templates. It is read-only.
type Registry struct {
	byName map[string]Template
}

var builtin = mustLoad()

// Builtin returns the registry built from the embedded templates.
func Builtin() *Registry {
	return builtin
}

// NewRegistry builds a registry from explicit templates. Later entries
// replace earlier ones with the same name.
func NewRegistry(ts ...Template) *Registry {
	r := &Registry{byName: make(map[string]Template, len(ts))}
	for _, t := range ts {
		r.byName[t.Name] = t
	}
	return r
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (Template, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns every registered template name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustLoad() *Registry {
	entries, err := files.ReadDir("tpl")
	if err != nil {
		panic(err)
	}
	ts := make([]Template, 0, len(entries))
	for _, e := range entries {
		body, err := files.ReadFile(path.Join("tpl", e.Name()))
		if err != nil {
			panic(err)
		}
		ts = append(ts, Template{
			Name: strings.TrimSuffix(e.Name(), ".tpl"),
			Body: string(body),
		})
	}
	return NewRegistry(ts...)
}
