// core/fasta/reader.go

// Package fasta reads nucleotide records from FASTA files, optionally
// gzip-compressed, or from standard input.
package fasta

import (
	"context"
	"errors"
	"fmt"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// ErrNotFound is returned when a requested record is absent.
var ErrNotFound = errors.New("sequence not found")

var errStop = errors.New("stop scan")

// ScanPath opens path and calls emit for every record.
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := ScanRecords(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadRecord returns the record called name from path, or the first record
// when name is empty. Scanning stops as soon as the record is found.
func ReadRecord(ctx context.Context, path, name string) (Record, error) {
	recs, err := ReadRecords(ctx, path, name)
	if err != nil {
		return Record{}, err
	}
	return recs[0], nil
}

// ReadRecords selects several records from a single pass over path, so that
// standard input can serve more than one request. The result follows the
// order of names; an empty name selects the first record in the file.
func ReadRecords(ctx context.Context, path string, names ...string) ([]Record, error) {
	out := make([]Record, len(names))
	found := make([]bool, len(names))
	remaining := len(names)

	first := true
	err := ScanPath(ctx, path, func(r Record) error {
		for i, name := range names {
			if found[i] || !(name == r.ID || (name == "" && first)) {
				continue
			}
			out[i], found[i] = r, true
			remaining--
		}
		first = false
		if remaining == 0 {
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	for i, ok := range found {
		if ok {
			continue
		}
		if names[i] == "" {
			return nil, fmt.Errorf("%w: no records in %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, names[i], path)
	}
	return out, nil
}
