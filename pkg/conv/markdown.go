package conv

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

var extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock

// MarkdownToPlain flattens markdown to plain text for terminal display:
// emphasis and links reduce to their text, code keeps its literal form,
// lists keep a simple dash marker.
func MarkdownToPlain(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(md)

	var sb strings.Builder
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Text:
			if entering {
				sb.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				sb.Write(n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				sb.Write(n.Literal)
				sb.WriteString("\n")
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if entering {
				sb.WriteString("\n")
			}
		case *ast.ListItem:
			if entering {
				sb.WriteString("- ")
			}
		case *ast.Paragraph, *ast.Heading:
			if !entering {
				sb.WriteString("\n")
			}
		}
		return ast.GoToNext
	})

	return strings.TrimRight(sb.String(), "\n")
}
