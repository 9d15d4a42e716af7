// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// ScanRecords parses FASTA from r and calls emit once per record, in file
// order. Sequence bytes are passed through unchanged apart from stripping
// surrounding whitespace on each line; case is preserved. Lines before the
// first header are ignored.
//
// Returning a non-nil error from emit stops the scan and is returned as-is.
// The scan honours ctx between lines.
func ScanRecords(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		rec     Record
		inRec   bool
		seq     = make([]byte, 0, 1<<16)
		lineNum int
	)

	flush := func() error {
		if !inRec {
			return nil
		}
		rec.Seq = append([]byte(nil), seq...)
		return emit(rec)
	}

	for sc.Scan() {
		lineNum++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			rec = parseHeader(line[1:])
			inRec = true
			seq = seq[:0]
			continue
		}
		if !inRec {
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan (line %d): %w", lineNum+1, err)
	}
	return flush()
}

// parseHeader splits a header line (without '>') into ID and description.
// The ID is the token before the first space or tab.
func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Description: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}
