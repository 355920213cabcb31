// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package align computes optimal global alignments of two nucleotide
// sequences using the Needleman-Wunsch dynamic program.
//
// An alignment run has three steps, each exposed separately:
//
//	s, err := align.Initialize(len(row), len(col), gap)       // base case only
//	tb, s, err := align.Align(row, col, scorer, gap)           // fill + traceback
//	alignedRow, alignedCol, err := align.Reconstruct(tb, row, col)
//
// The score matrix S has (len(row)+1) x (len(col)+1) cells. S[i][j] is the
// best score of aligning row[:i] against col[:j]:
//
//	S[i][j] = max(S[i-1][j-1] + score(row[i-1], col[j-1]),
//	              S[i-1][j] + gap,
//	              S[i][j-1] + gap)
//
// The traceback matrix records which of the three terms produced S[i][j].
// Ties are broken in the order Diagonal, Up, Left, so the result is
// reproducible.
//
// Global wraps the three steps and summarizes the result. AlignParallel fills
// the same matrices by anti-diagonals using several goroutines.
//
// Time and memory are both O(len(row) * len(col)).
package align
