// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// Names accepted by Opts.Scoring.
const (
	ScoringMatchMismatch          = "match-mismatch"
	ScoringTransitionTransversion = "transition-transversion"
)

// Opts configures Global.
type Opts struct {
	// Scoring selects the pairwise rule: ScoringMatchMismatch or
	// ScoringTransitionTransversion.
	Scoring string
	// Gap is added once per gap position. It is normally negative.
	Gap int
	// Match is the score of two identical symbols (both rules).
	Match int
	// Mismatch is the score of two different symbols under
	// ScoringMatchMismatch.
	Mismatch int
	// Transition and Transversion score substitutions within and across
	// chemical classes under ScoringTransitionTransversion.
	Transition   int
	Transversion int
	// Parallelism is the number of goroutines used to fill the matrices.
	// Values <= 1 select the sequential fill.
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	Scoring:      ScoringMatchMismatch,
	Gap:          -2,
	Match:        1,
	Mismatch:     -1,
	Transition:   -1,
	Transversion: -2,
	Parallelism:  1,
}

// Scorer returns the pairwise rule selected by o.Scoring.
func (o Opts) Scorer() (Scorer, error) {
	switch o.Scoring {
	case ScoringMatchMismatch, "":
		return MatchMismatch{Match: o.Match, Mismatch: o.Mismatch}, nil
	case ScoringTransitionTransversion:
		return TransitionTransversion{Match: o.Match, Transition: o.Transition, Transversion: o.Transversion}, nil
	}
	return nil, invalidInputf("unknown scoring %q; want %q or %q",
		o.Scoring, ScoringMatchMismatch, ScoringTransitionTransversion)
}
