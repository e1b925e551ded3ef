// Package htmlpage renders the fixed HTML shell used for error pages
// and development-extension output.
package htmlpage

import (
	"html/template"
	"strings"

	"github.com/pkg/errors"
)

const shellSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`

// A malformed shell is a programming error, caught the first time any
// package importing this one is initialized.
var shell = template.Must(template.New("page").Parse(shellSource))

type page struct {
	Title string
	Body  template.HTML
}

// Render fills the shell with a title and a body. The title is escaped;
// the body is trusted, pre-rendered HTML and is inserted verbatim.
func Render(title, body string) (string, error) {
	var buf strings.Builder
	if err := shell.Execute(&buf, page{Title: title, Body: template.HTML(body)}); err != nil {
		return "", errors.Wrap(err, "rendering html page")
	}
	return buf.String(), nil
}
