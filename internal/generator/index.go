package generator

import (
	"html/template"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"

	govalorant "github.com/Feuerlord2/govalorant/pkg"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Valorant Bundle Feeds</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 20px; background: #0f1923; color: #ece8e1; }
        .container { max-width: 800px; margin: 0 auto; }
        .feed-section { margin: 16px 0; padding: 16px; background: #1f2731; border-left: 4px solid #ff4655; border-radius: 6px; }
        .feed-link { color: #ff4655; margin-right: 12px; }
        .footer { margin-top: 30px; color: #8b978f; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Valorant Bundle Feeds</h1>
        <p>Every Valorant store bundle, one feed per language.</p>
        {{- range .}}
        <div class="feed-section">
            <strong>{{.Code}}</strong>
            {{- range .Files}}
            <a class="feed-link" href="{{.Name}}">{{.Format}}</a>
            {{- end}}
        </div>
        {{- end}}
        <div class="footer">Data from valorant-api.com. Not affiliated with Riot Games.</div>
    </div>
</body>
</html>
`))

type indexFile struct {
	Name   string
	Format string
}

type indexSection struct {
	Code  string
	Files []indexFile
}

// WriteIndex writes index.html linking the feeds of every language.
func (g *Generator) WriteIndex(languages []govalorant.Language) error {
	sections := make([]indexSection, 0, len(languages))
	for _, lang := range languages {
		s := indexSection{Code: languageLabel(lang)}
		for _, format := range g.formats {
			s.Files = append(s.Files, indexFile{Name: FileName(lang, format), Format: format})
		}
		sections = append(sections, s)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	path := filepath.Join(g.outputDir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := indexTemplate.Execute(f, sections); err != nil {
		return errors.Wrap(err, "failed to render index")
	}

	log.WithField("file", path).Info("Index written")
	return nil
}
