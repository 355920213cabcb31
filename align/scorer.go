// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "github.com/grailbio/bio-nw/dna"

// Scorer scores the alignment of symbol a (from the row sequence) against
// symbol b (from the column sequence). Implementations must be pure: the
// same pair always yields the same result.
//
// A Scorer that cannot classify a symbol returns an error for which
// IsUnrecognizedSymbol is true.
type Scorer interface {
	Score(a, b byte) (int, error)
}

// ScorerFunc adapts an ordinary function to the Scorer interface.
type ScorerFunc func(a, b byte) (int, error)

// Score implements Scorer.
func (f ScorerFunc) Score(a, b byte) (int, error) { return f(a, b) }

// MatchMismatch scores identical symbols with Match and everything else
// with Mismatch. Any byte is accepted.
type MatchMismatch struct {
	Match    int
	Mismatch int
}

// Score implements Scorer.
func (s MatchMismatch) Score(a, b byte) (int, error) {
	if a == b {
		return s.Match, nil
	}
	return s.Mismatch, nil
}

// TransitionTransversion distinguishes substitutions within a chemical class
// (purine<->purine, pyrimidine<->pyrimidine) from those across classes.
// Only A, C, G and T are recognized. Case is ignored.
type TransitionTransversion struct {
	Match        int
	Transition   int
	Transversion int
}

// Score implements Scorer.
func (s TransitionTransversion) Score(a, b byte) (int, error) {
	ca, ok := dna.Class(a)
	if !ok {
		return 0, unrecognizedSymbol(a)
	}
	cb, ok := dna.Class(b)
	if !ok {
		return 0, unrecognizedSymbol(b)
	}
	if dna.Upper(a) == dna.Upper(b) {
		return s.Match, nil
	}
	if ca == cb {
		return s.Transition, nil
	}
	return s.Transversion, nil
}
