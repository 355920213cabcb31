// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/grailbio/base/traverse"

// minCellsPerShard bounds how finely an anti-diagonal is split. Shorter
// diagonals are filled inline.
const minCellsPerShard = 256

// AlignParallel computes the same matrices as Align, using up to parallelism
// goroutines.
//
// Cells with i+j == k depend only on cells with i+j == k-1 and k-2, so the
// matrix is swept one anti-diagonal at a time and the cells of each
// anti-diagonal are split into shards filled concurrently. Ties are broken
// exactly as in Align, so both functions produce identical matrices.
//
// If scorer fails, the error of the first failing cell (in sweep order) is
// returned.
func AlignParallel(row, col string, scorer Scorer, gap, parallelism int) (*TracebackMatrix, *ScoreMatrix, error) {
	if scorer == nil {
		return nil, nil, invalidInputf("nil scorer")
	}
	if parallelism < 1 {
		return nil, nil, invalidInputf("parallelism must be positive, got %d", parallelism)
	}
	nRow, nCol := len(row), len(col)
	s, err := Initialize(nRow, nCol, gap)
	if err != nil {
		return nil, nil, err
	}
	tb := initTraceback(nRow, nCol)
	errs := make([]error, parallelism)
	for k := 2; k <= nRow+nCol; k++ {
		// Interior cells (i, k-i) with 1 <= i <= nRow and 1 <= k-i <= nCol.
		iStart, iEnd := max(1, k-nCol), min(nRow, k-1)+1
		nCells := iEnd - iStart
		if nCells <= 0 {
			continue
		}
		nShards := min(parallelism, (nCells+minCellsPerShard-1)/minCellsPerShard)
		if nShards <= 1 {
			for i := iStart; i < iEnd; i++ {
				if err := fillCell(s, tb, i, k-i, row, col, scorer, gap); err != nil {
					return nil, nil, err
				}
			}
			continue
		}
		for x := range errs {
			errs[x] = nil
		}
		// Each shard writes a disjoint range of cells and records its own
		// first error, so the error returned below does not depend on
		// scheduling.
		err := traverse.Limit(nShards).Each(nShards, func(shard int) error {
			start := iStart + nCells*shard/nShards
			end := iStart + nCells*(shard+1)/nShards
			for i := start; i < end; i++ {
				if err := fillCell(s, tb, i, k-i, row, col, scorer, gap); err != nil {
					errs[shard] = err
					return nil
				}
			}
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
		for _, err := range errs[:nShards] {
			if err != nil {
				return nil, nil, err
			}
		}
	}
	return tb, s, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
