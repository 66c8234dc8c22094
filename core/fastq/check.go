package fastq

import (
	"errors"
	"fmt"
	"io"
)

// ErrMalformed marks input that is not well-formed FASTQ.
var ErrMalformed = errors.New("malformed FASTQ")

const (
	wantHeader = iota
	inSeq
	inQual
)

// checker passes bytes through unchanged and follows the record layout
// (@header, sequence lines, +separator, quality lines as long as the
// sequence). A stray line where a header belongs fails the read at once; a
// record still open at end of input turns io.EOF into io.ErrUnexpectedEOF.
type checker struct {
	r     io.Reader
	state int
	line  int // current 1-based line number

	first   byte // first byte of the current line, 0 until seen
	letters int  // non-space bytes on the current line
	seqLen  int
	qualLen int

	err error
}

func newChecker(r io.Reader) *checker { return &checker{r: r, line: 1} }

func (c *checker) Read(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.r.Read(p)
	for _, b := range p[:n] {
		if b == '\n' {
			c.endLine()
			if c.err != nil {
				return n, c.err
			}
			continue
		}
		if c.first == 0 {
			c.first = b
		}
		if !isSpace(b) {
			c.letters++
		}
	}
	if err == io.EOF {
		if c.first != 0 {
			c.endLine()
		}
		if c.err == nil && c.state != wantHeader {
			c.err = fmt.Errorf("line %d: %w: record not finished: %w", c.line, ErrMalformed, io.ErrUnexpectedEOF)
		}
		if c.err != nil {
			return n, c.err
		}
	}
	return n, err
}

// Err returns the structural error found so far.
func (c *checker) Err() error { return c.err }

func (c *checker) endLine() {
	switch c.state {
	case wantHeader:
		switch {
		case c.letters == 0:
		case c.first != '@':
			c.err = fmt.Errorf("line %d: %w: expected '@' header", c.line, ErrMalformed)
		default:
			c.state, c.seqLen = inSeq, 0
		}
	case inSeq:
		if c.first == '+' {
			c.state, c.qualLen = inQual, 0
			if c.seqLen == 0 {
				c.state = wantHeader
			}
			break
		}
		c.seqLen += c.letters
	case inQual:
		c.qualLen += c.letters
		switch {
		case c.qualLen > c.seqLen:
			c.err = fmt.Errorf("line %d: %w: %d quality values for %d bases", c.line, ErrMalformed, c.qualLen, c.seqLen)
		case c.qualLen == c.seqLen:
			c.state = wantHeader
		}
	}
	c.line++
	c.first, c.letters = 0, 0
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
