// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/highlight"
	"znkr.io/linediff/sidebyside"
)

var (
	//go:embed page.html.tmpl
	pageTemplate string
	//go:embed page.css
	pageStyle string

	page = template.Must(template.New("page").Parse(pageTemplate))
)

type htmlPage struct {
	Title    string
	Style    template.CSS
	Counts   linediff.Counts
	Sections []htmlSection
}

type htmlSection struct {
	Hidden int // number of folded rows, 0 if the rows are shown
	Rows   []htmlRow
}

type htmlRow struct {
	Kind               string
	Original, Modified htmlCell
}

type htmlCell struct {
	Present bool
	LineNo  int
	Tokens  []highlight.Token
}

// HTML writes l to w as a standalone, minified HTML page with a two column table. Rows carry the
// kind as their CSS class ("equal", "added", "removed", "changed"), highlighted tokens are wrapped
// in spans with the token class.
func HTML(w io.Writer, l sidebyside.Layout, opts ...Option) error {
	o := newOptions(opts)
	data := htmlPage{
		Title:  o.title,
		Style:  template.CSS(pageStyle),
		Counts: l.Counts,
	}
	for _, s := range l.Fold(o.context) {
		if s.Hidden {
			data.Sections = append(data.Sections, htmlSection{Hidden: s.Len()})
			continue
		}
		rows := make([]htmlRow, 0, s.Len())
		for _, r := range l.Rows[s.Start:s.End] {
			orig, err := o.htmlCell(r.Original)
			if err != nil {
				return err
			}
			mod, err := o.htmlCell(r.Modified)
			if err != nil {
				return err
			}
			rows = append(rows, htmlRow{
				Kind:     strings.ToLower(r.Kind.String()),
				Original: orig,
				Modified: mod,
			})
		}
		data.Sections = append(data.Sections, htmlSection{Rows: rows})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %v", err)
	}

	minifier := minify.New()
	minifier.AddFunc("text/css", css.Minify)
	minifier.AddFunc("text/html", html.Minify)
	if err := minifier.Minify("text/html", w, &buf); err != nil {
		return fmt.Errorf("minifying: %v", err)
	}
	return nil
}

func (o *options) htmlCell(c sidebyside.Cell) (htmlCell, error) {
	if !c.Present {
		return htmlCell{}, nil
	}
	tokens, err := o.tokens(c.Text)
	if err != nil {
		return htmlCell{}, fmt.Errorf("highlighting line %d: %v", c.LineNo, err)
	}
	return htmlCell{Present: true, LineNo: c.LineNo, Tokens: tokens}, nil
}
