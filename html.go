package licfmt

import (
	"html"
	"strings"
)

type htmlRenderer struct{}

func (htmlRenderer) Ext() string { return "html" }

func (htmlRenderer) DocumentStart(title, style string) string {
	var sb strings.Builder
	sb.WriteString("<html><head><title>")
	sb.WriteString(htmlEncode(title))
	sb.WriteString("</title>")
	if style != "" {
		sb.WriteString(`<style media="screen" type="text/css">`)
		sb.WriteString(style)
		sb.WriteString("</style>")
	}
	sb.WriteString("</head><body>")
	return sb.String()
}

func (htmlRenderer) DocumentEnd() string { return "</body></html>" }

func (htmlRenderer) Header1(msg string) string {
	return "<h1>" + htmlEncode(msg) + "</h1>"
}

// BlankLine emits a non-breaking-space paragraph: visually blank, but not
// empty markup that browsers would collapse.
func (htmlRenderer) BlankLine() string { return "<p>&nbsp;</p>\n" }

func (htmlRenderer) Hyperlink(link, content string) string {
	if strings.TrimSpace(link) == "" {
		return content
	}
	return `<a href="` + link + `">` + content + "</a>"
}

func (htmlRenderer) TableHeader(notes string, columns ...string) string {
	var sb strings.Builder
	sb.WriteString(`<table border="0" cellspacing="0"><thead><tr>`)
	for _, cell := range cells(notes, columns) {
		sb.WriteString("<th>")
		sb.WriteString(cell)
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr></thead><tbody>")
	return sb.String()
}

func (htmlRenderer) TableRow(notes string, columns ...string) string {
	var sb strings.Builder
	sb.WriteString("<tr>")
	for _, col := range columns {
		// The trailing &nbsp; keeps empty cells from collapsing.
		sb.WriteString("<td>")
		sb.WriteString(col)
		sb.WriteString("&nbsp;</td>")
	}
	sb.WriteString("<td>")
	sb.WriteString(htmlEncode(notes))
	sb.WriteString("</td></tr>")
	return sb.String()
}

func (htmlRenderer) TableEnd() string { return "</tbody></table>" }

// htmlEncode entity-escapes HTML-significant characters plus the pipe
// character, which Markdown table cells cannot contain literally. Shared by
// the HTML and Markdown renderers for notes text.
func htmlEncode(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "|", "&#124;")
}
