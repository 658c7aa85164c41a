// Package spoiler renders generation results as plain text.
package spoiler

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"

	"github.com/Masterminds/sprig/v3"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pixil98/go-rando/internal/generator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

const defaultTemplate = `Seed {{ .Seed }} ({{ .ID }})
Game mode {{ .Config.GameMode }}, keysanity {{ .Config.Keysanity }}, Zelda logic {{ .Config.Z3Logic }}, Metroid logic {{ .Config.SMLogic }}
{{ range .Worlds }}
== {{ playerName .Player }} ==
Medallions:
{{- range $region, $item := .Medallions }}
  {{ $region }} requires {{ itemName $item }}
{{- end }}
Rewards:
{{- range $region, $reward := .Rewards }}
  {{ $region }}: {{ itemName $reward }}
{{- end }}
Locations:
{{- range .Placements }}
  {{ .Location }}: {{ itemName .Item }}{{ if $.Multi }} ({{ playerName ($.Player .Owner) }}){{ end }}
{{- end }}
{{ end }}
== Playthrough ==
{{- range $i, $s := .Spheres }}
Sphere {{ add1 $i }}
{{- range $s.Placements }}
  {{ .Location }}: {{ itemName .Item }}{{ if $.Multi }} ({{ playerName ($.Player .Owner) }}){{ end }}
{{- end }}
{{- range $s.Rewards }}
  {{ .Region }} completed: {{ itemName .Reward }}
{{- end }}
{{- end }}
`

var titleCaser = cases.Title(language.English, cases.NoLower)

// templateFuncs is sprig plus the naming helpers spoilers need.
var templateFuncs = func() template.FuncMap {
	m := sprig.TxtFuncMap()
	m["itemName"] = ItemName
	m["playerName"] = titleCaser.String
	return m
}()

// ItemName turns an item type name into display words, "MoonPearl" into
// "Moon Pearl". Runs of capitals stay together.
func ItemName(name string) string {
	var b strings.Builder
	var prev rune
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return titleCaser.String(b.String())
}

type view struct {
	*generator.Result
	Multi bool
}

type Renderer struct {
	tmpl  *template.Template
	width int
}

func New(opts ...RendererOpt) (*Renderer, error) {
	r := &Renderer{width: DefaultWidth}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.tmpl == nil {
		tmpl, err := parse(defaultTemplate)
		if err != nil {
			return nil, err
		}
		r.tmpl = tmpl
	}

	return r, nil
}

func parse(text string) (*template.Template, error) {
	tmpl, err := template.New("spoiler").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// Render executes the template for res and writes it word-wrapped to w.
func (r *Renderer) Render(w io.Writer, res *generator.Result) error {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, view{Result: res, Multi: len(res.Worlds) > 1})
	if err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	_, err = io.WriteString(w, wordwrap.String(buf.String(), r.width))
	return err
}
