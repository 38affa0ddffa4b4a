// Package bib loads the thesis bibliography and resolves the author/year
// citation keys used by the outline against it.
package bib

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Entry is one bibliography record.
type Entry struct {
	Key       string `json:"key"`
	Reference string `json:"reference"`
}

// Bibliography is an in-memory citation index.
type Bibliography struct {
	entries map[string]string // normalized key -> full reference
}

// Load reads a bibliography file, dispatching on extension: .json for a
// key/reference list, .html/.htm for a Zotero-style bibliography export.
func Load(path string) (*Bibliography, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".html", ".htm":
		return LoadHTML(path)
	default:
		return nil, fmt.Errorf("unsupported bibliography format: %s", path)
	}
}

// LoadJSON reads a JSON array of entries.
func LoadJSON(path string) (*Bibliography, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bibliography: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse bibliography JSON: %w", err)
	}
	b := &Bibliography{entries: make(map[string]string, len(entries))}
	for _, e := range entries {
		b.entries[Normalize(e.Key)] = e.Reference
	}
	return b, nil
}

// LoadHTML reads a Zotero bibliography export. Each reference sits in a
// div.csl-entry; the author/year key is derived from the entry text itself.
func LoadHTML(path string) (*Bibliography, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bibliography: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bibliography HTML: %w", err)
	}

	b := &Bibliography{entries: make(map[string]string)}
	sel := doc.Find("div.csl-entry")
	if sel.Length() == 0 {
		// Plain exports wrap each reference in a <p> instead.
		sel = doc.Find("p")
	}
	sel.Each(func(_ int, s *goquery.Selection) {
		ref := strings.Join(strings.Fields(s.Text()), " ")
		if ref == "" {
			return
		}
		key := deriveKey(ref)
		if key == "" {
			return
		}
		b.entries[key] = ref
	})
	if len(b.entries) == 0 {
		return nil, fmt.Errorf("no bibliography entries found in %s", path)
	}
	return b, nil
}

var (
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	authorPattern = regexp.MustCompile(`^[\p{L}'’-]+`)
	dropPattern   = regexp.MustCompile(`[^\p{L}\p{N} ]+`)
)

// deriveKey builds the "author year" lookup key from a full reference line.
func deriveKey(reference string) string {
	author := authorPattern.FindString(reference)
	year := yearPattern.FindString(reference)
	if author == "" || year == "" {
		return ""
	}
	return Normalize(author + " " + year)
}

// Normalize reduces a citation key to its first-author surname plus year,
// lowercased, so "Jack et al., 2010, Lancet Neurology" and "Jack, C.R.
// (2010)" land on the same index entry.
func Normalize(key string) string {
	cleaned := dropPattern.ReplaceAllString(key, " ")
	fields := strings.Fields(strings.ToLower(cleaned))
	if len(fields) == 0 {
		return ""
	}
	author := fields[0]
	year := yearPattern.FindString(key)
	if year == "" {
		// Structural keys like section banners carry no year; index them
		// whole so exact matches still resolve.
		return strings.Join(fields, " ")
	}
	return author + " " + year
}

// Resolve looks a citation key up, returning the full reference.
func (b *Bibliography) Resolve(key string) (string, bool) {
	ref, ok := b.entries[Normalize(key)]
	return ref, ok
}

// Len reports the number of indexed references.
func (b *Bibliography) Len() int {
	return len(b.entries)
}
