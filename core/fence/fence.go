// Package fence parses the info string of a fenced code block.
//
// An info string is a list of whitespace-separated tokens. The first token
// naming a known language selects the language, and a token of the form
// template=name (or template="name") selects the template. Every other
// token is ignored.
package fence

import (
	"strings"

	"github.com/gaurav-prasanna/doctestgen/core/lang"
)

const templateKey = "template"

// Annotation is the parsed form of an info string. Language and Template
// are only meaningful when the matching Has* field is true.
type Annotation struct {
	Language    lang.Language
	HasLanguage bool
	Template    string
	HasTemplate bool
}

// Actionable reports whether the block carries both a language and a template.
func (a Annotation) Actionable() bool {
	return a.HasLanguage && a.HasTemplate
}

// Parse parses info. It never fails: unrecognized tokens are skipped.
func Parse(info string) Annotation {
	var a Annotation
	tokens := strings.Fields(info)
	a.Language, a.HasLanguage = parseLanguage(tokens)
	a.Template, a.HasTemplate = parseTemplate(tokens)
	return a
}

func parseLanguage(tokens []string) (lang.Language, bool) {
	for _, tok := range tokens {
		if l, ok := lang.Lookup(tok); ok {
			return l, true
		}
	}
	return 0, false
}

func parseTemplate(tokens []string) (string, bool) {
	for _, tok := range tokens {
		key, value, found := strings.Cut(tok, "=")
		if !found || key != templateKey {
			continue
		}
		return unquote(value), true
	}
	return "", false
}

// unquote strips one layer of double quotes from each end.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
