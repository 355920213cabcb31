// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// Direction names the predecessor of a cell in the traceback matrix.
//
//	___|___
//	 D | U
//	 L | x
//
// Diagonal (D -> x) aligns one symbol of each sequence, Up (U -> x) aligns a
// row symbol against a gap, and Left (L -> x) aligns a gap against a column
// symbol. None marks the origin (0, 0).
type Direction uint8

const (
	None Direction = iota
	Diagonal
	Up
	Left
)

// valid reports whether d is one of the four defined directions.
func (d Direction) valid() bool { return d <= Left }

// String returns an arrow pointing at the predecessor cell.
func (d Direction) String() string {
	switch d {
	case None:
		return "·"
	case Diagonal:
		return "↖"
	case Up:
		return "↑"
	case Left:
		return "←"
	}
	return "?"
}
