// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteMatrices writes s and tb to w as two labeled grids, with col across the
// top and row down the left edge. Either matrix may be nil to skip it. Both
// are checked against row and col before anything is written.
//
// For row "WHY" and col "WHAT" the score grid begins as below; the top-left
// cell, shown here as row\col, is left blank.
//
//	row\col   -   W   H   A   T
//	      -   0  -2  -4  -6  -8
//	      W  -2   1  -1  -3  -5
//	    ...
func WriteMatrices(w io.Writer, tb *TracebackMatrix, s *ScoreMatrix, row, col string) error {
	if s != nil && (s.nRow != len(row)+1 || s.nCol != len(col)+1) {
		return invalidInputf("score matrix is %dx%d, want %dx%d", s.nRow, s.nCol, len(row)+1, len(col)+1)
	}
	if tb != nil && (tb.nRow != len(row)+1 || tb.nCol != len(col)+1) {
		return invalidInputf("traceback matrix is %dx%d, want %dx%d", tb.nRow, tb.nCol, len(row)+1, len(col)+1)
	}
	if s != nil {
		if err := writeGrid(w, row, col, func(i, j int) string { return strconv.Itoa(s.data[i*s.nCol+j]) }); err != nil {
			return err
		}
	}
	if tb != nil {
		if s != nil {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeGrid(w, row, col, func(i, j int) string { return tb.data[i*tb.nCol+j].String() }); err != nil {
			return err
		}
	}
	return nil
}

func writeGrid(out io.Writer, row, col string, cell func(i, j int) string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	label := func(seq string, k int) string {
		if k == 0 {
			return string(GapMarker)
		}
		return string(seq[k-1])
	}
	fmt.Fprint(w, "\t")
	for j := 0; j <= len(col); j++ {
		fmt.Fprintf(w, "%s\t", label(col, j))
	}
	fmt.Fprintln(w)
	for i := 0; i <= len(row); i++ {
		fmt.Fprintf(w, "%s\t", label(row, i))
		for j := 0; j <= len(col); j++ {
			fmt.Fprintf(w, "%s\t", cell(i, j))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
