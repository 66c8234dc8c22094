// core/fastq/reader_test.go
package fastq

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
)

const plain = `@read1 extra description
ACGTacgtNN
+
IIIIIIIIII
@read2
GGGG
+
!!!!
`

// writeGz creates a gzipped FASTQ file with provided data and returns its path.
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

func collect(t *testing.T, r *Reader) []Record {
	t.Helper()
	var out []Record
	for r.Next() {
		rec := r.Record()
		out = append(out, Record{ID: rec.ID, Seq: append([]byte(nil), rec.Seq...)})
	}
	if err := r.Err(); err != nil {
		t.Fatalf("iterate: %v", err)
	}
	return out
}

func TestReaderPlain(t *testing.T) {
	recs := collect(t, NewReader(strings.NewReader(plain)))
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "read1" || string(recs[0].Seq) != "ACGTacgtNN" {
		t.Errorf("record 1 = %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "read2" || string(recs[1].Seq) != "GGGG" {
		t.Errorf("record 2 = %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if r.Next() {
		t.Fatal("expected no records")
	}
	if r.Err() != nil || r.Count() != 0 {
		t.Fatalf("err=%v count=%d", r.Err(), r.Count())
	}
}

func TestOpenGzip(t *testing.T) {
	path := writeGz(t, "sample.fastq.gz", plain)
	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	recs := collect(t, f.Reader)
	if len(recs) != 2 || f.Count() != 2 {
		t.Fatalf("got %d records (count %d), want 2", len(recs), f.Count())
	}
}

func TestOpenGzipByMagicWithoutSuffix(t *testing.T) {
	path := writeGz(t, "sample.fq", plain)
	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	if recs := collect(t, f.Reader); len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
}

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.fastq")
	if err := os.WriteFile(path, []byte(plain), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	if recs := collect(t, f.Reader); len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
}

func TestOpenCorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.fastq.gz")
	if err := os.WriteFile(path, []byte("this is not gzip data at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if f, err := Open(path); err == nil {
		_ = f.Close()
		t.Fatal("expected error opening corrupt gzip")
	}
}

func TestTruncatedGzipStream(t *testing.T) {
	path := writeGz(t, "trunc.fastq.gz", strings.Repeat(plain, 200))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)/2], 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Open(path)
	if err != nil {
		return // header may already be unreadable; also a failure, as wanted
	}
	defer func() { _ = f.Close() }()
	for f.Next() {
	}
	if f.Err() == nil {
		t.Fatal("expected error from truncated stream")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.fastq.gz")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenStdin(t *testing.T) {
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

	f, err := Open("-")
	if err != nil {
		t.Fatalf("open stdin: %v", err)
	}
	defer func() { _ = f.Close() }()
	if recs := collect(t, f.Reader); len(recs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(recs))
	}
}

func TestReaderMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		recs int // records yielded before the error at most
	}{
		{"truncated final record", "@r1\nACGT\n+\nIIII\n@r2\nACGT\n", 1},
		{"truncated quality", "@r1\nACGT\n+\nII", 0},
		{"header only", "@r1\n", 0},
		{"not fastq", "just some text\nthat is not a read file\n", 0},
		{"missing @", "r1\nACGT\n+\nIIII\n", 0},
		{"quality too long", "@r1\nACGT\n+\nIIIIII\n", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tc.in))
			n := 0
			for r.Next() {
				n++
			}
			if !errors.Is(r.Err(), ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", r.Err())
			}
			if n > tc.recs {
				t.Fatalf("yielded %d records, want at most %d", n, tc.recs)
			}
		})
	}
}

func TestReaderTruncatedRecordIsUnexpectedEOF(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\n"))
	for r.Next() {
	}
	if !errors.Is(r.Err(), io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want io.ErrUnexpectedEOF", r.Err())
	}
}

func TestCheckerLayoutVariants(t *testing.T) {
	for _, in := range []string{
		"",
		"\n\n",
		"\n@a\nACGT\n+a\nIIII\n\n@b\nGG\n+\nII\n",
		"@b\r\nGG\r\n+\r\nII\r\n",
		"@c\nTT\n+\nII",
		"@d\nACGT\nAC\n+\nIII\nIII\n",
		"@e\nAC\n+\n@I\n",
	} {
		if _, err := io.ReadAll(newChecker(strings.NewReader(in))); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}
