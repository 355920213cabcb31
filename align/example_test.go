package align_test

import (
	"fmt"

	"github.com/grailbio/bio-nw/align"
)

func ExampleAlign() {
	row, col := "WHY", "WHAT"
	tb, s, err := align.Align(row, col, align.MatchMismatch{Match: 1, Mismatch: -1}, -2)
	if err != nil {
		panic(err)
	}
	alignedRow, alignedCol, err := align.Reconstruct(tb, row, col)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Final())
	fmt.Println(alignedCol)
	fmt.Println(alignedRow)
	// Output:
	// -1
	// WHAT
	// WH-Y
}

func ExampleGlobal() {
	opts := align.DefaultOpts
	opts.Scoring = align.ScoringTransitionTransversion
	opts.Gap, opts.Match, opts.Transition, opts.Transversion = -1, 2, -1, -2
	a, err := align.Global("GCATGCT", "GATTACA", opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Row)
	fmt.Println(a.Col)
	fmt.Printf("score=%d matches=%d mismatches=%d gaps=%d identity=%.2f\n",
		a.Score, a.Matches, a.Mismatches, a.Gaps, a.Identity())
	// Output:
	// GCA-TGCT
	// G-ATTACA
	// score=3 matches=4 mismatches=2 gaps=2 identity=0.50
}

func ExampleTracebackMatrix_String() {
	tb, _, err := align.Align("AG", "AT", align.MatchMismatch{Match: 1, Mismatch: -1}, -1)
	if err != nil {
		panic(err)
	}
	fmt.Print(tb)
	// Output:
	// · ← ←
	// ↑ ↖ ←
	// ↑ ↑ ↖
}
