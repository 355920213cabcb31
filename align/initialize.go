// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// Initialize returns a (rowLen+1) x (colLen+1) score matrix holding the
// Needleman-Wunsch base case: cell (i, 0) is i*gap, cell (0, j) is j*gap and
// every other cell is zero.
func Initialize(rowLen, colLen, gap int) (*ScoreMatrix, error) {
	if rowLen < 0 || colLen < 0 {
		return nil, invalidInputf("sequence lengths must be non-negative, got %d and %d", rowLen, colLen)
	}
	s := newScoreMatrix(rowLen+1, colLen+1)
	for i := 1; i <= rowLen; i++ {
		s.set(i, 0, s.At(i-1, 0)+gap)
	}
	for j := 1; j <= colLen; j++ {
		s.set(0, j, s.At(0, j-1)+gap)
	}
	return s, nil
}

// initTraceback returns the traceback matrix matching Initialize: Up down
// column 0, Left across row 0 and None at the origin.
func initTraceback(rowLen, colLen int) *TracebackMatrix {
	tb := newTracebackMatrix(rowLen+1, colLen+1)
	for i := 1; i <= rowLen; i++ {
		tb.set(i, 0, Up)
	}
	for j := 1; j <= colLen; j++ {
		tb.set(0, j, Left)
	}
	return tb
}
