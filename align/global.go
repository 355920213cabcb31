// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/grailbio/bio-nw/dna"

// Midline symbols.
const (
	midlineMatch      = '|'
	midlineTransition = ':'
	midlineOther      = ' '
)

// Alignment is one optimal global alignment of two sequences.
//
//	Row:     ACGT-A
//	Midline: |:|| |
//	Col:     ATGTCA
type Alignment struct {
	// Score is the bottom-right cell of the score matrix.
	Score int
	// Row and Col are the aligned sequences; they have equal length.
	Row, Col string
	// Midline has '|' under identical symbols, ':' under transitions and
	// ' ' elsewhere.
	Midline string

	Matches    int // identical, case-insensitive
	Mismatches int // substitutions, including transitions
	Gaps       int // GapMarkers in Row and Col
}

// Len returns the number of aligned columns.
func (a Alignment) Len() int { return len(a.Row) }

// Identity returns Matches / Len, or 0 for an empty alignment.
func (a Alignment) Identity() float64 {
	if len(a.Row) == 0 {
		return 0
	}
	return float64(a.Matches) / float64(len(a.Row))
}

// Summarize builds an Alignment from an aligned pair as returned by
// Reconstruct. Score is left at zero.
func Summarize(alignedRow, alignedCol string) (Alignment, error) {
	if len(alignedRow) != len(alignedCol) {
		return Alignment{}, invalidInputf("aligned sequences differ in length: %d and %d", len(alignedRow), len(alignedCol))
	}
	a := Alignment{Row: alignedRow, Col: alignedCol}
	mid := make([]byte, len(alignedRow))
	for k := range mid {
		r, c := alignedRow[k], alignedCol[k]
		switch {
		case r == GapMarker || c == GapMarker:
			mid[k] = midlineOther
			if r == GapMarker {
				a.Gaps++
			}
			if c == GapMarker {
				a.Gaps++
			}
		case dna.Upper(r) == dna.Upper(c):
			mid[k] = midlineMatch
			a.Matches++
		case dna.IsTransition(r, c):
			mid[k] = midlineTransition
			a.Mismatches++
		default:
			mid[k] = midlineOther
			a.Mismatches++
		}
	}
	a.Midline = string(mid)
	return a, nil
}

// Fill runs Align, or AlignParallel when o.Parallelism > 1, with the rule and
// gap penalty in o.
func (o Opts) Fill(row, col string) (*TracebackMatrix, *ScoreMatrix, error) {
	scorer, err := o.Scorer()
	if err != nil {
		return nil, nil, err
	}
	if o.Parallelism > 1 {
		return AlignParallel(row, col, scorer, o.Gap, o.Parallelism)
	}
	return Align(row, col, scorer, o.Gap)
}

// Global aligns row against col with the rule and penalties in opts and
// returns the reconstructed alignment.
func Global(row, col string, opts Opts) (Alignment, error) {
	tb, s, err := opts.Fill(row, col)
	if err != nil {
		return Alignment{}, err
	}
	return Traceback(tb, s, row, col)
}

// Traceback reconstructs and summarizes the alignment recorded in tb and s.
func Traceback(tb *TracebackMatrix, s *ScoreMatrix, row, col string) (Alignment, error) {
	if s == nil || s.nRow != len(row)+1 || s.nCol != len(col)+1 {
		return Alignment{}, invalidInputf("score matrix does not match sequences of length %d and %d", len(row), len(col))
	}
	alignedRow, alignedCol, err := Reconstruct(tb, row, col)
	if err != nil {
		return Alignment{}, err
	}
	a, err := Summarize(alignedRow, alignedCol)
	if err != nil {
		return Alignment{}, err
	}
	a.Score = s.Final()
	return a, nil
}
