// Package templates holds the e-mail bodies.
package templates

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

const (
	Welcome             = "welcome.html"
	ApplicationReceived = "application-received.html"
	StatusChanged       = "status-changed.html"
)

var parsed = template.Must(template.ParseFS(files, "*.html"))

func Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
