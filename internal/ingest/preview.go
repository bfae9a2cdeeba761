package ingest

import (
	"fmt"
	"strconv"
)

// PreviewEntry summarizes one imported file.
type PreviewEntry struct {
	Name   string
	Format Format
	// Lines and Cols are set for CSV files, Entries for JSON files.
	Lines   int
	Cols    int
	Entries int
	// Plotted is set when the file produced an (x,y) candidate.
	Plotted bool
	Err     error
}

// Summary returns a one-line description of the entry.
func (e PreviewEntry) Summary() string {
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.Format == FormatCSV:
		return fmt.Sprintf("CSV • %d lines • %d columns", e.Lines, e.Cols)
	default:
		return "JSON • " + strconv.Itoa(e.Entries) + " entries"
	}
}

// EntryFor builds the preview entry of a parse outcome.
func EntryFor(r Result, err error) PreviewEntry {
	return PreviewEntry{
		Name:    r.Name,
		Format:  r.Format,
		Lines:   r.Lines,
		Cols:    r.Cols,
		Entries: r.Entries,
		Err:     err,
	}
}

// Preview collects entries in arrival order.
type Preview struct {
	entries []PreviewEntry
}

// Add appends an entry.
func (p *Preview) Add(e PreviewEntry) {
	p.entries = append(p.entries, e)
}

// Entries returns the collected entries.
func (p *Preview) Entries() []PreviewEntry {
	return append([]PreviewEntry(nil), p.entries...)
}

// Len returns the number of entries.
func (p *Preview) Len() int {
	return len(p.entries)
}

// Reset clears the preview.
func (p *Preview) Reset() {
	p.entries = nil
}
