// Package lang is the closed catalog of languages that code samples can be
// materialized into. Each language knows its file extension and the
// directory its generated files are written to.
package lang

import "strings"

// Language identifies one output language.
type Language int

const (
	Go Language = iota
	Rust
)

type attrs struct {
	name string
	ext  string
	dir  string
}

// catalog is indexed by Language; it must list every constant above.
var catalog = [...]attrs{
	Go:   {name: "go", ext: "go", dir: "go_tests"},
	Rust: {name: "rust", ext: "rs", dir: "tests"},
}

// All returns every language in declaration order.
func All() []Language {
	out := make([]Language, len(catalog))
	for i := range catalog {
		out[i] = Language(i)
	}
	return out
}

// Lookup matches name against the catalog, ignoring case.
func Lookup(name string) (Language, bool) {
	for i, a := range catalog {
		if strings.EqualFold(a.name, name) {
			return Language(i), true
		}
	}
	return 0, false
}

// String returns the canonical (lower-case) language name.
func (l Language) String() string {
	if !l.valid() {
		return "unknown"
	}
	return catalog[l].name
}

// Ext returns the file extension without the leading dot (e.g. "rs").
func (l Language) Ext() string {
	if !l.valid() {
		return ""
	}
	return catalog[l].ext
}

// Dir returns the name of the output directory for this language.
func (l Language) Dir() string {
	if !l.valid() {
		return ""
	}
	return catalog[l].dir
}

func (l Language) valid() bool {
	return l >= 0 && int(l) < len(catalog)
}
