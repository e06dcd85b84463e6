package wiki

import (
	"bytes"
	"text/template"

	"github.com/Metriximor/Lusitania/internal/registry"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

const previewHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Page}} land registry</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #333; }
img.map { max-width: 100%; border: 1px solid #ccc; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>{{.Page}}</h1>
<img class="map" src="{{.Image}}" alt="{{.Page}} land registry map">
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`

var previewTemplate = template.Must(template.New("preview").Parse(previewHTML))

type previewData struct {
	Page    string
	Image   string
	Headers []string
	Rows    [][]string
}

// HTMLPreview renders a minified preview page embedding the annotated image
// and the plot table.
func HTMLPreview(page, imageFile string, plots []registry.Plot) (string, error) {
	data := previewData{
		Page:    page,
		Image:   imageFile,
		Headers: plotHeaders,
	}
	for _, p := range plots {
		data.Rows = append(data.Rows, plotRow(p))
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)

	return m.String("text/html", buf.String())
}
