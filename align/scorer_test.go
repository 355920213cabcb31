package align_test

import (
	"testing"

	"github.com/grailbio/bio-nw/align"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestMatchMismatch(t *testing.T) {
	s := align.MatchMismatch{Match: 3, Mismatch: -4}
	for _, test := range []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 3},
		{'A', 'C', -4},
		{'W', 'W', 3},
		{'a', 'A', -4},
		{'-', '-', 3},
	} {
		got, err := s.Score(test.a, test.b)
		assert.NoError(t, err)
		expect.EQ(t, got, test.want, "%q/%q", test.a, test.b)
	}
}

func TestTransitionTransversion(t *testing.T) {
	s := align.TransitionTransversion{Match: 2, Transition: -1, Transversion: -2}
	for _, test := range []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 2},
		{'a', 'A', 2},
		{'A', 'G', -1},
		{'G', 'A', -1},
		{'C', 'T', -1},
		{'t', 'c', -1},
		{'A', 'C', -2},
		{'A', 'T', -2},
		{'G', 'C', -2},
		{'G', 'T', -2},
	} {
		got, err := s.Score(test.a, test.b)
		assert.NoError(t, err)
		expect.EQ(t, got, test.want, "%q/%q", test.a, test.b)
	}

	for _, pair := range [][2]byte{{'N', 'A'}, {'A', 'N'}, {'U', 'U'}, {'-', 'A'}} {
		_, err := s.Score(pair[0], pair[1])
		expect.True(t, align.IsUnrecognizedSymbol(err), "%q/%q: err=%v", pair[0], pair[1], err)
		expect.False(t, align.IsInvalidInput(err))
	}
}

func TestOptsScorer(t *testing.T) {
	opts := align.DefaultOpts
	s, err := opts.Scorer()
	assert.NoError(t, err)
	expect.EQ(t, s, align.MatchMismatch{Match: 1, Mismatch: -1})

	opts.Scoring = align.ScoringTransitionTransversion
	opts.Transversion = -3
	s, err = opts.Scorer()
	assert.NoError(t, err)
	expect.EQ(t, s, align.TransitionTransversion{Match: 1, Transition: -1, Transversion: -3})

	opts.Scoring = "blosum62"
	_, err = opts.Scorer()
	expect.True(t, align.IsInvalidInput(err), "err=%v", err)
}
