// Package classify decides, per read, which motif groups it belongs to and
// renders the output block for matching groups. It performs no I/O.
package classify

import (
	"sensorscan-core/engine"
	"sensorscan-core/fastq"
	"sensorscan-core/motif"
)

// Group pairs a group name with its compiled matcher.
type Group struct {
	Name    string
	Set     motif.Set
	Matcher *engine.Matcher
}

// Outcome is the classification of one record.
type Outcome struct {
	ID      string
	Seq     []byte // lowercased sequence
	Matched []bool // parallel to the classifier's groups
}

// Any reports whether at least one group matched.
func (o Outcome) Any() bool {
	for _, m := range o.Matched {
		if m {
			return true
		}
	}
	return false
}

// Block returns the two-line output block for this record.
func (o Outcome) Block() []byte { return AppendBlock(nil, o.ID, o.Seq) }

// Classifier holds the compiled groups. It is read-only after construction
// and may be shared across goroutines.
type Classifier struct {
	groups []Group
}

// New wraps already-compiled groups.
func New(groups []Group) *Classifier {
	return &Classifier{groups: append([]Group(nil), groups...)}
}

// Compile expands each motif group and builds its matcher.
func Compile(groups []motif.Group) *Classifier {
	gs := make([]Group, len(groups))
	for i, g := range groups {
		set := g.SearchSet()
		gs[i] = Group{Name: g.Name, Set: set, Matcher: engine.Build(set.Patterns())}
	}
	return &Classifier{groups: gs}
}

// Groups returns the compiled groups in configuration order.
func (c *Classifier) Groups() []Group { return c.groups }

// Classify lowercases rec's sequence and tests it against every group.
// Groups are evaluated independently; a record may match several.
func (c *Classifier) Classify(rec fastq.Record) Outcome {
	var o Outcome
	c.ClassifyInto(&o, rec)
	return o
}

// ClassifyInto is Classify reusing o's buffers.
func (c *Classifier) ClassifyInto(o *Outcome, rec fastq.Record) {
	o.ID = rec.ID
	o.Seq = appendLower(o.Seq[:0], rec.Seq)
	if cap(o.Matched) < len(c.groups) {
		o.Matched = make([]bool, len(c.groups))
	}
	o.Matched = o.Matched[:len(c.groups)]
	for i, g := range c.groups {
		o.Matched[i] = g.Matcher.ContainsAny(o.Seq)
	}
}

// AppendBlock appends ">id\nseq\n" to dst.
func AppendBlock(dst []byte, id string, seq []byte) []byte {
	dst = append(dst, '>')
	dst = append(dst, id...)
	dst = append(dst, '\n')
	dst = append(dst, seq...)
	return append(dst, '\n')
}

func appendLower(dst, src []byte) []byte {
	for _, b := range src {
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		dst = append(dst, b)
	}
	return dst
}
