// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// GapMarker is the symbol placed opposite an inserted or deleted symbol in
// an aligned sequence.
const GapMarker = '-'

// Reconstruct walks tb from the bottom-right cell back to the origin and
// returns one optimal alignment of row and col. Each returned sequence, with
// its GapMarkers removed, equals the corresponding input.
//
// tb must be (len(row)+1) x (len(col)+1). A direction that would leave the
// matrix, an undefined direction, or None anywhere but the origin yields an
// error for which IsCorruptTraceback is true.
func Reconstruct(tb *TracebackMatrix, row, col string) (alignedRow, alignedCol string, err error) {
	if tb == nil {
		return "", "", invalidInputf("nil traceback matrix")
	}
	if tb.nRow != len(row)+1 || tb.nCol != len(col)+1 {
		return "", "", invalidInputf("traceback matrix is %dx%d, want %dx%d for sequences of length %d and %d",
			tb.nRow, tb.nCol, len(row)+1, len(col)+1, len(row), len(col))
	}

	// Built back to front, then reversed.
	n := len(row)
	if len(col) > n {
		n = len(col)
	}
	r := make([]byte, 0, n)
	c := make([]byte, 0, n)

	i, j := len(row), len(col)
	for i > 0 || j > 0 {
		d := tb.data[i*tb.nCol+j]
		switch {
		case d == Diagonal && i > 0 && j > 0:
			r = append(r, row[i-1])
			c = append(c, col[j-1])
			i--
			j--
		case d == Up && i > 0:
			r = append(r, row[i-1])
			c = append(c, GapMarker)
			i--
		case d == Left && j > 0:
			r = append(r, GapMarker)
			c = append(c, col[j-1])
			j--
		case !d.valid():
			return "", "", corruptTracebackf("cell (%d, %d) holds undefined direction %d", i, j, d)
		default:
			return "", "", corruptTracebackf("cell (%d, %d) holds %s, which cannot be followed", i, j, directionName(d))
		}
	}
	reverse(r)
	reverse(c)
	return string(r), string(c), nil
}

func directionName(d Direction) string {
	switch d {
	case None:
		return "None"
	case Diagonal:
		return "Diagonal"
	case Up:
		return "Up"
	case Left:
		return "Left"
	}
	return "?"
}

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
