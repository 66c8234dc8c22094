// Package fastq streams sequencing reads out of (optionally gzip-compressed)
// four-line FASTQ input, one record at a time.
package fastq

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofastq "github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one read. ID is the first word of the header line; Seq holds
// the bases exactly as they appear in the input.
type Record struct {
	ID  string
	Seq []byte
}

// Reader is a forward-only, non-restartable record iterator:
//
//	for r.Next() {
//		rec := r.Record()
//	}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	chk *checker
	sc  *seqio.Scanner
	rec Record
	n   int
	err error
}

// NewReader parses FASTQ from r. Quality scores are decoded as Sanger
// (phred+33) and then discarded. Input that breaks the record layout, such
// as a stray line or a record cut short at end of input, is an error
// wrapping ErrMalformed.
func NewReader(r io.Reader) *Reader {
	chk := newChecker(r)
	tmpl := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
	return &Reader{chk: chk, sc: seqio.NewScanner(biofastq.NewReader(chk, tmpl))}
}

// Next advances to the next record. It returns false at end of input or on
// the first parse error.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.sc.Next() {
		err := r.chk.Err()
		if err == nil {
			err = r.sc.Error()
		}
		if err != nil {
			r.err = fmt.Errorf("record %d: %w", r.n+1, err)
		}
		return false
	}
	s := r.sc.Seq()
	r.rec.ID = firstField(s.Name())
	r.rec.Seq = r.rec.Seq[:0]
	if qs, ok := s.(*linear.QSeq); ok {
		for _, ql := range qs.Seq {
			r.rec.Seq = append(r.rec.Seq, byte(ql.L))
		}
	} else {
		for i := 0; i < s.Len(); i++ {
			r.rec.Seq = append(r.rec.Seq, byte(s.At(i).L))
		}
	}
	r.n++
	return true
}

func firstField(name string) string {
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		return name[:i]
	}
	return name
}

// Record returns the current record. Its Seq is reused by the next call to
// Next; copy it to retain it.
func (r *Reader) Record() Record { return r.rec }

// Count returns the number of records read so far.
func (r *Reader) Count() int { return r.n }

// Err returns the first parse or read error, if any.
func (r *Reader) Err() error { return r.err }

// File is a Reader bound to an opened input.
type File struct {
	*Reader
	Path string
	rc   io.ReadCloser
}

// Open opens path ("-" for stdin) and returns a record iterator over it.
// The caller must Close the File.
func Open(path string) (*File, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	return &File{Reader: NewReader(rc), Path: path, rc: rc}, nil
}

// Close releases the decompressor and the underlying file.
func (f *File) Close() error { return f.rc.Close() }
