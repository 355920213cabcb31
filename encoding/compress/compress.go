// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package compress picks a stream codec from a file name suffix: ".gz" is
// gzip, ".sz" is framed snappy, anything else is passed through.
package compress

import (
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Codec identifies a stream compression format.
type Codec int

const (
	// None means the stream is not compressed.
	None Codec = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Snappy is the snappy framing format.
	Snappy
)

// FromPath guesses the codec of path from its suffix.
func FromPath(path string) Codec {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	case strings.HasSuffix(path, ".sz"):
		return Snappy
	}
	return None
}

// TrimExt strips the compression suffix, if any, from path.
func TrimExt(path string) string {
	switch FromPath(path) {
	case Gzip:
		return strings.TrimSuffix(path, ".gz")
	case Snappy:
		return strings.TrimSuffix(path, ".sz")
	}
	return path
}

// NewReader wraps r with a decompressor chosen by the suffix of path. The
// caller must Close the result; closing does not close r.
func NewReader(r io.Reader, path string) (io.ReadCloser, error) {
	switch FromPath(path) {
	case Gzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: open gzip stream", path)
		}
		return gz, nil
	case Snappy:
		return nopReadCloser{snappy.NewReader(r)}, nil
	}
	return nopReadCloser{r}, nil
}

// NewWriter wraps w with a compressor chosen by the suffix of path. The
// caller must Close the result to flush it; closing does not close w.
func NewWriter(w io.Writer, path string) io.WriteCloser {
	switch FromPath(path) {
	case Gzip:
		return gzip.NewWriter(w)
	case Snappy:
		return snappy.NewBufferedWriter(w)
	}
	return nopWriteCloser{w}
}

type nopReadCloser struct{ io.Reader }

func (nopReadCloser) Close() error { return nil }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
