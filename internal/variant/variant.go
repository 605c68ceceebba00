// Package variant detects probable duplicates in a completed database:
// rows whose filename-derived titles normalize to the same string after
// stripping the bracketed naming-convention tokens.
package variant

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Bracketed markers used by the naming convention "[yyyy] Title [3D][AV1][4K]".
// Stripped before titles are compared.
var identifiers = []string{"[4K]", "[AV1]", "[3D]"}

// Entry is the subset of one row's fields shown in the variant report.
type Entry struct {
	Width    string
	Height   string
	Duration string
	Size     string
	Volume   string
	Path     string
}

// Index groups database rows by normalized title, remembering the order in
// which titles were first seen so reporting is deterministic.
type Index struct {
	titles []string
	groups map[string][]Entry
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{groups: make(map[string][]Entry)}
}

// ParseTitle extracts the normalized title and release year from a filename
// base (path and extension already stripped). Identifier tokens are removed
// first; a leading "[yyyy]" token, when present, is split off as the year.
func ParseTitle(base string) (title, year string) {
	title = filepath.Base(base)
	for _, id := range identifiers {
		title = strings.ReplaceAll(title, id, "")
	}

	if _, rest, ok := strings.Cut(title, "["); ok {
		year, _, _ = strings.Cut(rest, "]")
		if year != "" {
			_, title, _ = strings.Cut(title, "]")
		}
	}
	return strings.TrimSpace(title), year
}

// LoadFile parses a database file into the index. Rows are tab-delimited;
// the reader tolerates a UTF-8 BOM and ragged rows (audio columns may be
// absent). Rows too short to carry the reported fields are skipped.
func (ix *Index) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}

	for _, fields := range records {
		if len(fields) < 6 {
			continue
		}
		e := Entry{
			Width:    strings.TrimSpace(fields[0]),
			Height:   strings.TrimSpace(fields[1]),
			Duration: strings.TrimSpace(fields[2]),
			Size:     strings.TrimSpace(fields[3]),
			Volume:   strings.TrimSpace(fields[len(fields)-2]),
			Path:     strings.TrimSpace(fields[len(fields)-1]),
		}
		e.Path = strings.TrimPrefix(e.Path, "\uFEFF")

		base := strings.TrimSuffix(e.Path, filepath.Ext(e.Path))
		title, _ := ParseTitle(base)
		ix.Add(title, e)
	}
	return nil
}

// Add records one entry under title, tracking first-encounter order.
func (ix *Index) Add(title string, e Entry) {
	if _, seen := ix.groups[title]; !seen {
		ix.titles = append(ix.titles, title)
	}
	ix.groups[title] = append(ix.groups[title], e)
}

// Variants returns, in first-encounter order, every title with more than
// one associated row together with its rows.
func (ix *Index) Variants() []TitleGroup {
	var out []TitleGroup
	for _, title := range ix.titles {
		if entries := ix.groups[title]; len(entries) > 1 {
			out = append(out, TitleGroup{Title: title, Entries: entries})
		}
	}
	return out
}

// TitleGroup is one duplicate/variant set.
type TitleGroup struct {
	Title   string
	Entries []Entry
}
