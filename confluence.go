package licfmt

import "strings"

type confluenceRenderer struct{}

func (confluenceRenderer) Ext() string { return "wiki" }

func (confluenceRenderer) DocumentStart(title, style string) string { return "" }

func (confluenceRenderer) DocumentEnd() string { return "" }

func (confluenceRenderer) Header1(msg string) string { return "h1." + msg + "\n" }

func (confluenceRenderer) BlankLine() string { return "\n" }

// Hyperlink renders [content|link]. Both sides are trimmed so stray
// whitespace never ends up inside the bracket syntax.
func (confluenceRenderer) Hyperlink(link, content string) string {
	l := strings.TrimSpace(link)
	c := strings.TrimSpace(content)
	if l == "" {
		return c
	}
	return "[" + c + "|" + l + "]"
}

// TableHeader uses double-pipe delimiters, Confluence's header-cell syntax.
func (confluenceRenderer) TableHeader(notes string, columns ...string) string {
	return "||" + strings.Join(cells(notes, columns), "||") + "||\n"
}

func (confluenceRenderer) TableRow(notes string, columns ...string) string {
	return "|" + strings.Join(cells(notes, columns), "|") + "|\n"
}

func (confluenceRenderer) TableEnd() string { return "" }

var confluenceEscaper = strings.NewReplacer(
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"|", `\|`,
)

// EscapeConfluence backslash-escapes characters with wiki-markup meaning,
// for raw text outside table cells.
func EscapeConfluence(s string) string { return confluenceEscaper.Replace(s) }
