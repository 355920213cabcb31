// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"bytes"
	"fmt"
	"strconv"
	"text/tabwriter"
)

// ScoreMatrix is the Needleman-Wunsch score table. Cell (i, j) holds the best
// score of aligning the first i row symbols against the first j column
// symbols.
type ScoreMatrix struct {
	nRow, nCol int
	data       []int // row-major nRow*nCol array.
}

func newScoreMatrix(nRow, nCol int) *ScoreMatrix {
	return &ScoreMatrix{nRow: nRow, nCol: nCol, data: make([]int, nRow*nCol)}
}

// Rows returns the number of rows, len(row)+1.
func (m *ScoreMatrix) Rows() int { return m.nRow }

// Cols returns the number of columns, len(col)+1.
func (m *ScoreMatrix) Cols() int { return m.nCol }

// At returns cell (i, j). It panics if the cell is out of range.
func (m *ScoreMatrix) At(i, j int) int {
	m.check(i, j)
	return m.data[i*m.nCol+j]
}

// Final returns the bottom-right cell, the score of the whole alignment.
func (m *ScoreMatrix) Final() int { return m.data[len(m.data)-1] }

// Row returns a copy of row i.
func (m *ScoreMatrix) Row(i int) []int {
	m.check(i, 0)
	r := make([]int, m.nCol)
	copy(r, m.data[i*m.nCol:(i+1)*m.nCol])
	return r
}

func (m *ScoreMatrix) set(i, j, v int) { m.data[i*m.nCol+j] = v }

func (m *ScoreMatrix) check(i, j int) {
	if i < 0 || i >= m.nRow || j < 0 || j >= m.nCol {
		panic(fmt.Sprintf("cell (%d, %d) out of range for %dx%d matrix", i, j, m.nRow, m.nCol))
	}
}

// String renders the matrix as right-aligned columns, one line per row.
func (m *ScoreMatrix) String() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', tabwriter.AlignRight)
	for i := 0; i < m.nRow; i++ {
		for j := 0; j < m.nCol; j++ {
			fmt.Fprintf(w, "%s\t", strconv.Itoa(m.data[i*m.nCol+j]))
		}
		fmt.Fprintln(w)
	}
	w.Flush() // nolint: errcheck
	return buf.String()
}

// TracebackMatrix records, for each cell of a ScoreMatrix, the neighbor its
// score was derived from.
type TracebackMatrix struct {
	nRow, nCol int
	data       []Direction // row-major nRow*nCol array.
}

// NewTracebackMatrix returns an nRow x nCol matrix with every cell set to
// None. Align builds its own; this is for callers that construct a traceback
// by hand.
func NewTracebackMatrix(nRow, nCol int) (*TracebackMatrix, error) {
	if nRow < 1 || nCol < 1 {
		return nil, invalidInputf("traceback matrix must be at least 1x1, got %dx%d", nRow, nCol)
	}
	return newTracebackMatrix(nRow, nCol), nil
}

func newTracebackMatrix(nRow, nCol int) *TracebackMatrix {
	return &TracebackMatrix{nRow: nRow, nCol: nCol, data: make([]Direction, nRow*nCol)}
}

// Rows returns the number of rows.
func (m *TracebackMatrix) Rows() int { return m.nRow }

// Cols returns the number of columns.
func (m *TracebackMatrix) Cols() int { return m.nCol }

// At returns cell (i, j). It panics if the cell is out of range.
func (m *TracebackMatrix) At(i, j int) Direction {
	if i < 0 || i >= m.nRow || j < 0 || j >= m.nCol {
		panic(fmt.Sprintf("cell (%d, %d) out of range for %dx%d matrix", i, j, m.nRow, m.nCol))
	}
	return m.data[i*m.nCol+j]
}

// Set overwrites cell (i, j). It panics if the cell is out of range.
func (m *TracebackMatrix) Set(i, j int, d Direction) {
	if i < 0 || i >= m.nRow || j < 0 || j >= m.nCol {
		panic(fmt.Sprintf("cell (%d, %d) out of range for %dx%d matrix", i, j, m.nRow, m.nCol))
	}
	m.data[i*m.nCol+j] = d
}

func (m *TracebackMatrix) set(i, j int, d Direction) { m.data[i*m.nCol+j] = d }

// String renders the matrix with one arrow per cell.
func (m *TracebackMatrix) String() string {
	var buf bytes.Buffer
	for i := 0; i < m.nRow; i++ {
		for j := 0; j < m.nCol; j++ {
			if j > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(m.data[i*m.nCol+j].String())
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
