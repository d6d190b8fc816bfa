// Package loans reads loan records from tabular exports.
package loans

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/ladder/internal/model"
)

// Parser converts a loan export into LoanRecords.
type Parser interface {
	Parse(r io.Reader) ([]model.LoanRecord, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	return names
}

// DefaultRegistry returns a registry with the comma- and tab-separated
// parsers configured from opts.
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	r.Register(NewCSVParser("csv", opts))

	tsv := opts
	tsv.Delimiter = '\t'
	r.Register(NewCSVParser("tsv", tsv))
	return r
}

// FormatOf guesses a format name from a file extension.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// ReadFile parses path with the parser registered for format. An empty
// format is taken from the file extension.
func ReadFile(reg *Registry, path, format string) ([]model.LoanRecord, error) {
	if format == "" {
		format = FormatOf(path)
	}
	p := reg.Get(format)
	if p == nil {
		return nil, fmt.Errorf("no parser for format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening loan file: %w", err)
	}
	defer f.Close()

	records, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}
