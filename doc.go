// Package licfmt renders tabular license and dependency reports in multiple
// output formats.
//
// Supported formats are Markdown, HTML, CSV, Confluence wiki markup, and
// plain text. Each format is a stateless [Renderer]: a fixed set of pure
// string-producing operations (document start/end, heading, blank line,
// hyperlink, table header/row/end, file extension). Callers invoke the
// operations in a fixed sequence and concatenate the results, or let
// [Report] do the walking for them.
//
// # Renderers
//
// One singleton value per format: [MarkdownRenderer], [HTMLRenderer],
// [CSVRenderer], [ConfluenceRenderer], [TextRenderer]. All are safe for
// concurrent use; none carries state between calls. Use [For] to map a
// [Format] to its renderer, and [ParseFormat] to convert a CLI flag string
// into a [Format]:
//
//	f, err := licfmt.ParseFormat(flagValue)
//	rd, err := licfmt.For(f)
//
// Every row carries a free-text notes field rendered as the last cell.
// Notes are escaped per format: Markdown wraps them in a <notextile> span
// with HTML entities and pipes entity-escaped, HTML entity-escapes them,
// CSV quotes per RFC 4180. Hyperlinks degrade to plain content when the
// link is empty after trimming.
//
// # Reports
//
// [Report] assembles a full document (title, optional CSS for HTML, column
// labels, rows) and drives the renderer sequence:
//
//	r := licfmt.Report{
//		Title:   "Licenses",
//		Columns: []string{"Library", "Version"},
//		Rows:    []licfmt.Row{{Values: []string{"libfoo", "1.0"}, Notes: "MIT"}},
//	}
//	err := r.Write(os.Stdout, licfmt.Markdown)
//
// Report validates that each row has as many values as there are column
// labels and returns [ErrColumnCount] otherwise; the renderers themselves
// never check. Use [Report.WriteIter] or [Report.WriteChan] to render rows
// from an iterator or channel without collecting them first.
//
// # Escaping Helpers
//
// [EscapeMarkdown] and [EscapeConfluence] backslash-escape markup-significant
// characters for raw text outside table cells.
//
// # Errors
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrColumnCount] — row value count differs from the column label count
package licfmt
