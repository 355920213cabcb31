// Package fastq reads the ID, sequence and quality lines of FASTQ files so
// that reads can be aligned like FASTA records.
package fastq

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/bio-nw/encoding/compress"
	"github.com/pkg/errors"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// A Read is one FASTQ record. ID is the header line without the leading
// '@' and without anything after the first space.
type Read struct {
	ID, Seq, Qual string
}

var errEOF = errors.New("eof")

// Scanner reads FASTQ records one at a time. Scanners are not threadsafe.
//
// Scanner requires ID lines to begin with "@", line 3 to begin with "+", and
// the sequence and quality lines to be of equal length.
type Scanner struct {
	b   *bufio.Scanner
	err error
}

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, 64<<20)
	return &Scanner{b: b}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	if !f.b.Scan() {
		if f.err = f.b.Err(); f.err == nil {
			f.err = errEOF
		}
		return false
	}
	id := strings.TrimSuffix(f.b.Text(), "\r")
	if len(id) < 2 || id[0] != '@' {
		f.err = ErrInvalid
		return false
	}
	if sp := strings.IndexByte(id, ' '); sp > 0 {
		id = id[:sp]
	}
	read.ID = id[1:]
	if !f.scan() {
		return false
	}
	read.Seq = strings.TrimSuffix(f.b.Text(), "\r")
	if !f.scan() {
		return false
	}
	if unk := f.b.Bytes(); len(unk) == 0 || unk[0] != '+' {
		f.err = ErrInvalid
		return false
	}
	if !f.scan() {
		return false
	}
	read.Qual = strings.TrimSuffix(f.b.Text(), "\r")
	if len(read.Qual) != len(read.Seq) {
		f.err = ErrInvalid
		return false
	}
	return true
}

func (f *Scanner) scan() bool {
	ok := f.b.Scan()
	if !ok {
		if f.err = f.b.Err(); f.err == nil {
			f.err = ErrShort
		}
	}
	return ok
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}

// IsFASTQ reports whether path names a FASTQ file, compressed or not.
func IsFASTQ(path string) bool {
	path = compress.TrimExt(path)
	return strings.HasSuffix(path, ".fq") || strings.HasSuffix(path, ".fastq")
}

// ReadAll reads every record of the FASTQ file at path. Files ending in
// ".gz" or ".sz" are decompressed.
func ReadAll(ctx context.Context, path string) (reads []Read, err error) {
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
	var (
		s    = NewScanner(r)
		read Read
	)
	for s.Scan(&read) {
		reads = append(reads, read)
	}
	if err = s.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s (record %d)", path, len(reads)+1)
	}
	return reads, nil
}
