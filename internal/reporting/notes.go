package reporting

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Interpretation is the fixed note displayed under the explanation chart.
const Interpretation = "**Interpretation:** in general, **Cement** and **Age (days)** dominate the prediction."

var markdown = goldmark.New()

// InterpretationHTML renders the interpretation note for the web page.
func InterpretationHTML() (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(Interpretation), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InterpretationText renders the interpretation note as plain text by
// dropping the emphasis markers.
func InterpretationText() string {
	return plainText(Interpretation)
}

func plainText(md string) string {
	source := []byte(md)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(n.Segment.Value(source))
				if n.SoftLineBreak() || n.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.Paragraph:
			if !entering && n.NextSibling() != nil {
				b.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
