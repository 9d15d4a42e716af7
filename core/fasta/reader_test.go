package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNnn
`

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func writePlain(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestScanRecords(t *testing.T) {
	var got []Record
	err := ScanRecords(context.Background(), strings.NewReader("junk\n"+plain+"\n>empty\n"), func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 records, got %d", len(got))
	}
	if got[0].ID != "seq1" || got[0].Description != "first record" || string(got[0].Seq) != "ACGTacgt" {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].ID != "seq2" || string(got[1].Seq) != "NNnn" {
		t.Errorf("record 1 = %+v", got[1])
	}
	if got[2].ID != "empty" || len(got[2].Seq) != 0 {
		t.Errorf("record 2 = %+v", got[2])
	}
}

func TestScanRecordsStopsOnEmitError(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	err := ScanRecords(context.Background(), strings.NewReader(plain), func(Record) error {
		n++
		return boom
	})
	if !errors.Is(err, boom) || n != 1 {
		t.Fatalf("want boom after one record, got err=%v n=%d", err, n)
	}
}

func TestScanRecordsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ScanRecords(ctx, strings.NewReader(plain), func(Record) error {
		t.Fatalf("no record expected after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestReadRecordGzip(t *testing.T) {
	path := writeGz(t, "test.fa.gz", plain)

	rec, err := ReadRecord(context.Background(), path, "seq2")
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if string(rec.Seq) != "NNnn" {
		t.Fatalf("gzip parse failed, rec=%+v", rec)
	}
}

func TestReadRecordGzipMagicWithoutSuffix(t *testing.T) {
	path := writeGz(t, "compressed.fa", plain)

	rec, err := ReadRecord(context.Background(), path, "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.ID != "seq1" {
		t.Fatalf("want first record, got %q", rec.ID)
	}
}

func TestReadRecordNotFound(t *testing.T) {
	path := writePlain(t, "x.fa", plain)

	_, err := ReadRecord(context.Background(), path, "chrZ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "chrZ") || !strings.Contains(err.Error(), path) {
		t.Fatalf("error should name record and file: %v", err)
	}

	empty := writePlain(t, "empty.fa", "")
	if _, err := ReadRecord(context.Background(), empty, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound for empty file, got %v", err)
	}
}

func TestReadRecordMissingFile(t *testing.T) {
	_, err := ReadRecord(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestReadRecordsOrder(t *testing.T) {
	path := writePlain(t, "x.fa", plain)

	recs, err := ReadRecords(context.Background(), path, "seq2", "", "seq1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	ids := []string{recs[0].ID, recs[1].ID, recs[2].ID}
	if strings.Join(ids, ",") != "seq2,seq1,seq1" {
		t.Fatalf("ids = %v", ids)
	}
}

func TestReadRecordStdin(t *testing.T) {
	// Fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, err := ReadRecords(context.Background(), Stdin, "seq1", "seq2")
	if err != nil {
		t.Fatalf("read stdin: %v", err)
	}
	if recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("unexpected records %+v", recs)
	}
}
