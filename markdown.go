package licfmt

import "strings"

type markdownRenderer struct{}

func (markdownRenderer) Ext() string { return "md" }

func (markdownRenderer) DocumentStart(title, style string) string { return "" }

func (markdownRenderer) DocumentEnd() string { return "" }

func (markdownRenderer) Header1(msg string) string { return "# " + msg + "\n" }

func (markdownRenderer) BlankLine() string { return "\n" }

func (markdownRenderer) Hyperlink(link, content string) string {
	if strings.TrimSpace(link) == "" {
		return content
	}
	return "[" + content + "](" + link + ")"
}

func (markdownRenderer) TableHeader(notes string, columns ...string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(strings.Join(columns, " | "))
	sb.WriteString(" | ")
	sb.WriteString(notes)
	sb.WriteString("\n")
	// The separator row must have one dash cell per column, notes included.
	sb.WriteString(strings.Repeat("--- | ", len(columns)))
	sb.WriteString("--- \n")
	return sb.String()
}

func (markdownRenderer) TableRow(notes string, columns ...string) string {
	var sb strings.Builder
	for _, col := range columns {
		sb.WriteString(col)
		sb.WriteString(" | ")
	}
	// Notes are free text: render verbatim so markdown in them is inert,
	// with pipes entity-escaped so they cannot split the cell.
	sb.WriteString("<notextile>")
	sb.WriteString(htmlEncode(notes))
	sb.WriteString("</notextile>\n")
	return sb.String()
}

func (markdownRenderer) TableEnd() string { return "" }

var markdownEscaper = strings.NewReplacer(
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

// EscapeMarkdown backslash-escapes characters with Markdown meaning. It is
// for raw text outside table cells; [Renderer.TableRow] does not use it.
func EscapeMarkdown(s string) string { return markdownEscaper.Replace(s) }
