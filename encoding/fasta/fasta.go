// Package fasta reads FASTA files into memory for alignment. FASTA files
// consist of a number of named sequences that may be interrupted by
// newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// spaces immediately after '>'.  Any text appear after a space are ignored.
// For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/bio-nw/encoding/compress"
	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// Fasta represents FASTA-formatted data, consisting of a set of named
// sequences.
type Fasta interface {
	// Get returns a substring of the given sequence name at the given
	// coordinates, which are treated as a 0-based half-open interval
	// [start, end). Get is thread-safe.
	Get(seqName string, start, end int) (string, error)

	// Seq returns the whole sequence of the given name.
	Seq(seqName string) (string, error)

	// Len returns the length of the given sequence.
	Len(seqName string) (int, error)

	// SeqNames returns the names of all sequences, in the order of appearance in
	// the FASTA file.
	SeqNames() []string
}

type fasta struct {
	seqs     map[string]string
	seqNames []string
}

// New creates a new Fasta that holds all the FASTA data from the given reader
// in memory. Sequence data before the first header line and repeated
// sequence names are errors.
func New(r io.Reader) (Fasta, error) {
	f := &fasta{seqs: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)
	var (
		seqName  string
		seq      strings.Builder
		inRecord bool
		lineNo   int
	)
	flush := func() error {
		if !inRecord {
			return nil
		}
		if _, ok := f.seqs[seqName]; ok {
			return errors.Errorf("duplicate sequence name %q", seqName)
		}
		f.seqs[seqName] = seq.String()
		f.seqNames = append(f.seqNames, seqName)
		seq.Reset()
		return nil
	}
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			if err := flush(); err != nil {
				return nil, err
			}
			seqName = strings.Split(line[1:], " ")[0]
			if seqName == "" {
				return nil, errors.Errorf("malformed FASTA file: empty sequence name at line %d", lineNo)
			}
			inRecord = true
			continue
		}
		if !inRecord {
			return nil, errors.Errorf("malformed FASTA file: sequence data before first header at line %d", lineNo)
		}
		seq.WriteString(line)
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return f, nil
}

// Open reads the FASTA file at path, which may be any path understood by
// github.com/grailbio/base/file. Files ending in ".gz" or ".sz" are
// decompressed.
func Open(ctx context.Context, path string) (_ Fasta, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	r, err := compress.NewReader(in.Reader(ctx), path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := r.Close(); e != nil && err == nil {
			err = e
		}
	}()
	f, err := New(r)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return f, nil
}

// Get implements Fasta.Get().
func (f *fasta) Get(seqName string, start, end int) (string, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", seqName)
	}
	if end <= start {
		return "", errors.Errorf("start must be less than end")
	}
	if start < 0 || end > len(s) {
		return "", errors.Errorf("invalid query range %d - %d for sequence %s with length %d",
			start, end, seqName, len(s))
	}
	return s[start:end], nil
}

// Seq implements Fasta.Seq().
func (f *fasta) Seq(seqName string) (string, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", seqName)
	}
	return s, nil
}

// Len implements Fasta.Len().
func (f *fasta) Len(seqName string) (int, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return 0, errors.Errorf("sequence not found: %s", seqName)
	}
	return len(s), nil
}

// SeqNames implements Fasta.SeqNames().
func (f *fasta) SeqNames() []string {
	return f.seqNames
}

// Lookup resolves a region of f. region is either a sequence name, or
// "name:begin-end" where [begin, end] is a 1-based closed interval, as in
// samtools. A sequence whose whole name equals region wins over the
// "name:begin-end" reading, so names containing ':' stay reachable. An empty
// region selects the first sequence.
func Lookup(f Fasta, region string) (string, error) {
	if region == "" {
		names := f.SeqNames()
		if len(names) == 0 {
			return "", errors.Errorf("FASTA data has no sequences")
		}
		return f.Seq(names[0])
	}
	colon := strings.LastIndexByte(region, ':')
	if colon < 0 {
		return f.Seq(region)
	}
	if _, err := f.Len(region); err == nil {
		return f.Seq(region)
	}
	name, rng := region[:colon], region[colon+1:]
	dash := strings.IndexByte(rng, '-')
	if dash < 0 {
		return "", errors.Errorf("region %q: want name:begin-end", region)
	}
	begin, err := strconv.Atoi(rng[:dash])
	if err != nil {
		return "", errors.Wrapf(err, "region %q", region)
	}
	end, err := strconv.Atoi(rng[dash+1:])
	if err != nil {
		return "", errors.Wrapf(err, "region %q", region)
	}
	if begin < 1 {
		return "", errors.Errorf("region %q: begin must be >= 1", region)
	}
	return f.Get(name, begin-1, end)
}
