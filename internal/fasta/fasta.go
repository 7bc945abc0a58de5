// Package fasta reads and writes FASTA-formatted sequence records.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one FASTA entry: the header's ID (up to the first space),
// the remainder of the header, and the concatenated sequence line(s).
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// ReadFile reads all records from path, transparently decompressing
// .gz files. The path "-" reads from stdin.
func ReadFile(path string) ([]Record, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return Read(reader)
}

// Read parses FASTA records from r. Sequence data may span multiple
// lines and is concatenated; blank lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long sequence lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024) // 10MB max line

	var records []Record
	var current *Record
	var seq strings.Builder

	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			records = append(records, *current)
		}
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()
			id, desc := parseHeader(line)
			current = &Record{ID: id, Description: desc}
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("sequence data before first FASTA header: %q", line)
		}
		seq.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan FASTA: %w", err)
	}

	return records, nil
}

// parseHeader splits a ">" header line into ID and description.
func parseHeader(header string) (id, desc string) {
	header = strings.TrimPrefix(header, ">")
	if idx := strings.IndexByte(header, ' '); idx != -1 {
		return header[:idx], strings.TrimSpace(header[idx+1:])
	}
	return header, ""
}

// Write renders records in two-line form: a ">"-prefixed header, then
// the sequence on a single line.
func Write(w io.Writer, records []Record) error {
	for _, rec := range records {
		header := rec.ID
		if rec.Description != "" {
			header += " " + rec.Description
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", header, rec.Sequence); err != nil {
			return fmt.Errorf("write FASTA record %s: %w", rec.ID, err)
		}
	}
	return nil
}
