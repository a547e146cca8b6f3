// Package prompt renders flow prompt templates. Templates are static text
// with named placeholders and optional conditional regions; rendering is
// deterministic for a given input. Binary media referenced by a flow is
// never inlined into the template text — it travels as a separate inline
// part on the generation request.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateError reports a prompt that could not be rendered, typically
// because a placeholder has no corresponding field.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("cannot render prompt template %q: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// Template is a parsed, immutable prompt template.
type Template struct {
	name string
	tmpl *template.Template
}

// MustParse parses a template at load time and panics on a malformed
// definition. Flow templates are package-level constants, so a parse
// failure is a programming error.
func MustParse(name, text string) *Template {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		panic(fmt.Sprintf("prompt: parse %q: %v", name, err))
	}
	return &Template{name: name, tmpl: tmpl}
}

// Render substitutes the fields of data into the template. Conditional
// regions are included only when their controlling field is non-empty.
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", &TemplateError{Template: t.name, Err: err}
	}
	return buf.String(), nil
}
