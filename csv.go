package licfmt

import (
	"encoding/csv"
	"strings"
)

type csvRenderer struct{}

func (csvRenderer) Ext() string { return "csv" }

func (csvRenderer) DocumentStart(title, style string) string { return "" }

func (csvRenderer) DocumentEnd() string { return "" }

// Header1 returns "": CSV has no heading concept.
func (csvRenderer) Header1(msg string) string { return "" }

func (csvRenderer) BlankLine() string { return "" }

// Hyperlink renders "content (link)" since CSV has no native link syntax.
func (csvRenderer) Hyperlink(link, content string) string {
	if strings.TrimSpace(link) == "" {
		return content
	}
	return content + " (" + link + ")"
}

// TableHeader is just a row whose fields are the column labels.
func (r csvRenderer) TableHeader(notes string, columns ...string) string {
	return r.TableRow(notes, columns...)
}

func (csvRenderer) TableRow(notes string, columns ...string) string {
	var sb strings.Builder
	cw := csv.NewWriter(&sb)
	_ = cw.Write(cells(notes, columns)) // cannot fail on a strings.Builder
	cw.Flush()
	return sb.String()
}

func (csvRenderer) TableEnd() string { return "" }
