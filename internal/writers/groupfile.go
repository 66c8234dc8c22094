package writers

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/snksoft/crc"

	"sensorscan/internal/report"
)

// GroupFile is a buffered output file written under a temporary name in the
// destination directory. Commit renames it into place; Abort removes it.
// After either, further Commit/Abort calls are no-ops, so callers can always
// defer Abort.
type GroupFile struct {
	group string
	path  string
	f     *os.File
	bw    *bufio.Writer
	sum   *crc.Hash
	n     int64
	done  bool
}

// CreateGroupFile opens a temporary file next to path.
func CreateGroupFile(group, path string) (*GroupFile, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &GroupFile{
		group: group,
		path:  path,
		f:     f,
		bw:    bufio.NewWriterSize(f, 256<<10),
		sum:   crc.NewHash(crc.CRC64ECMA),
	}, nil
}

// Write appends p to the file.
func (g *GroupFile) Write(p []byte) (int, error) {
	if g.done {
		return 0, fmt.Errorf("write to closed output %s", g.path)
	}
	n, err := g.bw.Write(p)
	g.sum.Update(p[:n])
	g.n += int64(n)
	return n, err
}

// Path is the final destination.
func (g *GroupFile) Path() string { return g.path }

// Commit flushes, closes and renames the file into place.
func (g *GroupFile) Commit() (report.Output, error) {
	if err := g.finish(); err != nil {
		return report.Output{}, err
	}
	return g.publish()
}

// finish flushes and closes the temporary file. On error it is removed.
func (g *GroupFile) finish() error {
	if g.done {
		return fmt.Errorf("output %s already closed", g.path)
	}
	g.done = true
	err := g.bw.Flush()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(g.f.Name())
		return fmt.Errorf("commit %s: %w", g.path, err)
	}
	return nil
}

// publish renames a finished temporary file into place.
func (g *GroupFile) publish() (report.Output, error) {
	tmp := g.f.Name()
	if err := os.Rename(tmp, g.path); err != nil {
		_ = os.Remove(tmp)
		return report.Output{}, fmt.Errorf("commit %s: %w", g.path, err)
	}
	return report.Output{Group: g.group, Path: g.path, Bytes: g.n, CRC64: g.sum.CRC()}, nil
}

// CommitAll commits a file's outputs together: all are flushed and closed
// before any is renamed. If a step fails every output is discarded,
// including ones already renamed into place.
func CommitAll(outs []*GroupFile) ([]report.Output, error) {
	for i, g := range outs {
		if err := g.finish(); err != nil {
			for _, rest := range outs[i+1:] {
				rest.Abort()
			}
			for _, prev := range outs[:i] {
				_ = os.Remove(prev.f.Name())
			}
			return nil, err
		}
	}
	res := make([]report.Output, 0, len(outs))
	for i, g := range outs {
		r, err := g.publish()
		if err != nil {
			for _, prev := range outs[:i] {
				_ = os.Remove(prev.path)
			}
			for _, rest := range outs[i+1:] {
				_ = os.Remove(rest.f.Name())
			}
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// Abort discards the temporary file.
func (g *GroupFile) Abort() {
	if g.done {
		return
	}
	g.done = true
	_ = g.f.Close()
	_ = os.Remove(g.f.Name())
}
