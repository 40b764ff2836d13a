package worksheet

import (
	"html/template"
	"io"
	"strings"

	"github.com/ksarkes/chainsum/problem"
)

// Meta carries the descriptive header/footer content of one worksheet.
type Meta struct {
	// Title is the page heading, e.g. "Addition & subtraction within 100".
	Title string
	// Subtitle summarizes the batch, e.g. "100 problems · difficulty 10 – ∞".
	Subtitle string
	// Note is a free-text line under the header, typically name/date blanks.
	Note string
	// ShowAnswers fills the answer slots, turning the sheet into a key.
	ShowAnswers bool
}

type sheetItem struct {
	Expression string
	Answer     int
}

type sheetData struct {
	Meta  Meta
	Items []sheetItem
}

// RenderHTML writes the printable page for problems to w.
// Complexity: O(n) in the number of problems.
func RenderHTML(w io.Writer, problems []problem.Problem, meta Meta) error {
	data := sheetData{Meta: meta, Items: make([]sheetItem, 0, len(problems))}
	for _, p := range problems {
		stmt := strings.TrimSuffix(p.Statement(), "?")
		data.Items = append(data.Items, sheetItem{Expression: stmt, Answer: p.Answer()})
	}

	return sheetTmpl.Execute(w, data)
}

var sheetTmpl = template.Must(template.New("worksheet").Parse(sheetHTML))

// sheetHTML is the A4 print layout: 4-column grid, tabular numerals,
// page-break protection per problem.
const sheetHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Meta.Title}}</title>
  <style>
    @page {
      size: A4 portrait;
      margin: 8mm;
    }
    * {
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Helvetica Neue', Arial, sans-serif;
      line-height: 1.35;
      color: #111;
      margin: 0 auto;
      padding: 10mm 12mm 14mm;
      max-width: 208mm;
      background: #fff;
      font-size: 16px;
    }
    header h1 {
      font-size: 20px;
      margin: 0 0 4px;
    }
    header .note {
      margin: 2px 0 12px;
      color: #333;
    }
    .grid {
      display: grid;
      grid-template-columns: repeat(4, minmax(0, 1fr));
      column-gap: 8mm;
      row-gap: 4mm;
      font-size: 17px;
    }
    .problem {
      min-height: 26px;
      display: flex;
      align-items: center;
    }
    .problem .expression {
      font-variant-numeric: tabular-nums;
    }
    .problem .slot {
      display: inline-block;
      min-width: 14mm;
      border-bottom: 1px solid #999;
      text-align: center;
    }
    footer {
      margin-top: 16px;
      font-size: 11px;
      color: #888;
    }
    @media print {
      body {
        margin: 0;
        padding: 0;
        max-width: none;
      }
      .problem {
        break-inside: avoid;
        page-break-inside: avoid;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Meta.Title}}</h1>
{{- with .Meta.Note}}
    <p class="note">{{.}}</p>
{{- end}}
  </header>
  <section class="grid">
{{- range .Items}}
    <div class="problem"><span class="expression">{{.Expression}}<span class="slot">{{if $.Meta.ShowAnswers}}{{.Answer}}{{end}}</span></span></div>
{{- end}}
  </section>
{{- with .Meta.Subtitle}}
  <footer>{{.}}</footer>
{{- end}}
</body>
</html>
`
