// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// Align fills the Needleman-Wunsch score matrix for row against col and
// records the traceback direction of every cell.
//
// Cells are computed in row-major order. For cell (i, j):
//
//	diag = S[i-1][j-1] + scorer.Score(row[i-1], col[j-1])
//	up   = S[i-1][j] + gap
//	left = S[i][j-1] + gap
//
// S[i][j] is the largest of the three. When several are equal the direction
// is Diagonal if diag is among them, else Up, else Left.
//
// An error returned by scorer is passed through unchanged and no matrices are
// returned.
func Align(row, col string, scorer Scorer, gap int) (*TracebackMatrix, *ScoreMatrix, error) {
	if scorer == nil {
		return nil, nil, invalidInputf("nil scorer")
	}
	s, err := Initialize(len(row), len(col), gap)
	if err != nil {
		return nil, nil, err
	}
	tb := initTraceback(len(row), len(col))
	for i := 1; i <= len(row); i++ {
		for j := 1; j <= len(col); j++ {
			if err := fillCell(s, tb, i, j, row, col, scorer, gap); err != nil {
				return nil, nil, err
			}
		}
	}
	return tb, s, nil
}

// fillCell computes cell (i, j) of s and tb from its three predecessors,
// which must already be filled.
func fillCell(s *ScoreMatrix, tb *TracebackMatrix, i, j int, row, col string, scorer Scorer, gap int) error {
	pair, err := scorer.Score(row[i-1], col[j-1])
	if err != nil {
		return err
	}
	n := s.nCol
	diag := s.data[(i-1)*n+(j-1)] + pair
	up := s.data[(i-1)*n+j] + gap
	left := s.data[i*n+(j-1)] + gap

	best := diag
	if up > best {
		best = up
	}
	if left > best {
		best = left
	}
	s.data[i*n+j] = best

	switch best {
	case diag:
		tb.data[i*n+j] = Diagonal
	case up:
		tb.data[i*n+j] = Up
	default:
		tb.data[i*n+j] = Left
	}
	return nil
}
