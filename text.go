package licfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type textRenderer struct{}

func (textRenderer) Ext() string { return "txt" }

func (textRenderer) DocumentStart(title, style string) string { return "" }

func (textRenderer) DocumentEnd() string { return "" }

func (textRenderer) Header1(msg string) string {
	return msg + "\n" + strings.Repeat("=", runewidth.StringWidth(msg)) + "\n"
}

func (textRenderer) BlankLine() string { return "\n" }

func (textRenderer) Hyperlink(link, content string) string {
	if strings.TrimSpace(link) == "" {
		return content
	}
	return content + " (" + link + ")"
}

func (textRenderer) TableHeader(notes string, columns ...string) string {
	cs := cells(notes, columns)
	under := make([]string, len(cs))
	for i, c := range cs {
		// Minimum 3 so even one-character labels get a visible rule.
		under[i] = strings.Repeat("-", max(runewidth.StringWidth(c), 3))
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(strings.Join(cs, "  "))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(under, "  "))
	sb.WriteString("\n")
	return sb.String()
}

func (textRenderer) TableRow(notes string, columns ...string) string {
	return strings.Join(cells(notes, columns), "  ") + "\n"
}

func (textRenderer) TableEnd() string { return "" }
