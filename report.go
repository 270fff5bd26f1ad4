package licfmt

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Row is one logical table row: ordered column values plus free-text notes.
// The notes field is rendered as the last cell in every format.
type Row struct {
	Values []string
	Notes  string
}

// Report is a complete document: title, optional style rules (used by HTML
// only), ordered column labels, and data rows. The zero value of NotesLabel
// renders as "Notes".
type Report struct {
	Title      string
	Style      string
	Columns    []string
	NotesLabel string
	Rows       []Row
}

func (r Report) notesLabel() string {
	if r.NotesLabel == "" {
		return "Notes"
	}
	return r.NotesLabel
}

// Render renders the report with rd and returns the document text.
// It returns [ErrColumnCount] if any row's value count differs from the
// column label count.
func (r Report) Render(rd Renderer) (string, error) {
	var sb strings.Builder
	if err := r.start(&sb, rd); err != nil {
		return "", err
	}
	for i, row := range r.Rows {
		if err := r.writeRow(&sb, rd, i, row); err != nil {
			return "", err
		}
	}
	if err := r.end(&sb, rd); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders the report in format f and writes it to w.
func (r Report) Write(w io.Writer, f Format) error {
	rd, err := For(f)
	if err != nil {
		return err
	}
	if err := r.start(w, rd); err != nil {
		return err
	}
	for i, row := range r.Rows {
		if err := r.writeRow(w, rd, i, row); err != nil {
			return err
		}
	}
	return r.end(w, rd)
}

// WriteIter renders rows from an iterator as they arrive, ignoring r.Rows.
// The renderer contract is streaming by construction, so no row needs to be
// held past its own write.
func (r Report) WriteIter(w io.Writer, f Format, rows iter.Seq[Row]) error {
	rd, err := For(f)
	if err != nil {
		return err
	}
	if err := r.start(w, rd); err != nil {
		return err
	}
	i := 0
	var streamErr error
	rows(func(row Row) bool {
		if err := r.writeRow(w, rd, i, row); err != nil {
			streamErr = err
			return false
		}
		i++
		return true
	})
	if streamErr != nil {
		return streamErr
	}
	return r.end(w, rd)
}

// WriteChan renders rows from a channel. It is a thin wrapper around
// [Report.WriteIter].
func (r Report) WriteChan(w io.Writer, f Format, ch <-chan Row) error {
	return r.WriteIter(w, f, chanToIter(ch))
}

func chanToIter(ch <-chan Row) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for row := range ch {
			if !yield(row) {
				return
			}
		}
	}
}

func (r Report) start(w io.Writer, rd Renderer) error {
	if _, err := io.WriteString(w, rd.DocumentStart(r.Title, r.Style)); err != nil {
		return err
	}
	if r.Title != "" {
		if _, err := io.WriteString(w, rd.Header1(r.Title)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, rd.TableHeader(r.notesLabel(), r.Columns...))
	return err
}

func (r Report) writeRow(w io.Writer, rd Renderer, i int, row Row) error {
	if len(row.Values) != len(r.Columns) {
		return fmt.Errorf("%w: row %d has %d values, header has %d columns",
			ErrColumnCount, i, len(row.Values), len(r.Columns))
	}
	_, err := io.WriteString(w, rd.TableRow(row.Notes, row.Values...))
	return err
}

func (r Report) end(w io.Writer, rd Renderer) error {
	if _, err := io.WriteString(w, rd.TableEnd()); err != nil {
		return err
	}
	_, err := io.WriteString(w, rd.DocumentEnd())
	return err
}
