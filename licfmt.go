package licfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrColumnCount       = errors.New("column count mismatch")
)

// Format represents an output format.
type Format string

const (
	Markdown   Format = "markdown"
	HTML       Format = "html"
	CSV        Format = "csv"
	Confluence Format = "confluence"
	Text       Format = "text"
)

var formats = []Format{Markdown, HTML, CSV, Confluence, Text}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string, e.g. a CLI flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Renderer is the contract every output format implements. All operations
// are pure string producers: callers invoke them in a fixed sequence
// (DocumentStart, Header1, TableHeader, TableRow per row, TableEnd,
// DocumentEnd) and concatenate the results. Implementations carry no state,
// so any number of goroutines may share one value without coordination.
//
// Operations never fail on well-formed input. Callers are responsible for
// passing every TableRow the same number of columns as the TableHeader;
// [Report] enforces that for them.
type Renderer interface {
	// DocumentStart emits the format's prologue. style is optional CSS-like
	// text; formats that cannot embed style ignore it.
	DocumentStart(title, style string) string

	// DocumentEnd emits the format's epilogue.
	DocumentEnd() string

	// Hyperlink renders content linking to link. When link trims to empty,
	// it degrades to rendering content alone.
	Hyperlink(link, content string) string

	// BlankLine emits a visual spacer that does not collapse in the output.
	BlankLine() string

	// Header1 emits a top-level heading, or "" for formats without headings.
	Header1(msg string) string

	// TableHeader renders the header row: columns in order, then notes as
	// the final column label.
	TableHeader(notes string, columns ...string) string

	// TableRow renders one data row: columns in order, then notes last,
	// each field escaped per the format's rules.
	TableRow(notes string, columns ...string) string

	// TableEnd emits the table's closing markup, or "" if the format has
	// none.
	TableEnd() string

	// Ext returns the fixed lowercase file extension for the format.
	Ext() string
}

// Per-format renderer singletons.
var (
	MarkdownRenderer   Renderer = markdownRenderer{}
	HTMLRenderer       Renderer = htmlRenderer{}
	CSVRenderer        Renderer = csvRenderer{}
	ConfluenceRenderer Renderer = confluenceRenderer{}
	TextRenderer       Renderer = textRenderer{}
)

// For returns the renderer for a format.
func For(f Format) (Renderer, error) {
	switch f {
	case Markdown:
		return MarkdownRenderer, nil
	case HTML:
		return HTMLRenderer, nil
	case CSV:
		return CSVRenderer, nil
	case Confluence:
		return ConfluenceRenderer, nil
	case Text:
		return TextRenderer, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// cells appends the notes field to the column values. Every format renders
// notes as the last cell.
func cells(notes string, columns []string) []string {
	out := make([]string, 0, len(columns)+1)
	out = append(out, columns...)
	return append(out, notes)
}
