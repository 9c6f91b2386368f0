package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv renders {{.VAR_NAME}} template references in raw config bytes
// from the process environment. Template syntax is used instead of $VAR so
// passwords, regexes, and shell snippets survive untouched.
//
// A variable that is not set renders as the empty string; config validation
// catches required fields left empty. Content that fails to parse or render
// as a template is returned as-is.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, entry := range os.Environ() {
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			env[key] = value
		}
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, env); err != nil {
		return data
	}
	return rendered.Bytes()
}
