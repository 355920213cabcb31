package align

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomNucleotides(r *rand.Rand, n int) string {
	const alphabet = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func TestAlignParallelMatchesAlign(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	scorer := TransitionTransversion{Match: 2, Transition: -1, Transversion: -2}
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {7, 0}, {13, 29}, {1500, 1100}, {600, 2100}} {
		row := randomNucleotides(r, dims[0])
		col := randomNucleotides(r, dims[1])
		wantTB, wantS, err := Align(row, col, scorer, -1)
		require.NoError(t, err)
		for _, p := range []int{1, 2, 3, 8} {
			tb, s, err := AlignParallel(row, col, scorer, -1, p)
			require.NoError(t, err)
			assert.Equal(t, wantS.data, s.data, "dims=%v parallelism=%d", dims, p)
			assert.Equal(t, wantTB.data, tb.data, "dims=%v parallelism=%d", dims, p)
		}
	}
}

func TestAlignParallelScorerError(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	row := []byte(randomNucleotides(r, 1200))
	row[900] = 'N'
	col := randomNucleotides(r, 1000)
	scorer := TransitionTransversion{Match: 1, Transition: -1, Transversion: -1}
	for _, p := range []int{1, 4} {
		tb, s, err := AlignParallel(string(row), col, scorer, -1, p)
		assert.True(t, IsUnrecognizedSymbol(err), "err=%v", err)
		assert.Nil(t, tb)
		assert.Nil(t, s)
	}
}

func TestAlignParallelFirstErrorInSweepOrder(t *testing.T) {
	row := []byte(strings.Repeat("A", 1200))
	col := []byte(strings.Repeat("A", 1200))
	row[1000] = 'X'
	col[1000] = 'Z'
	// Cells (1, 1001) and (1001, 1) fail on the same anti-diagonal, in
	// different shards; the one with the smaller row index comes first.
	scorer := ScorerFunc(func(a, b byte) (int, error) {
		if a != 'A' || b != 'A' {
			return 0, fmt.Errorf("bad %c/%c", a, b)
		}
		return 1, nil
	})
	_, _, err := Align(string(row), string(col), scorer, -1)
	require.Error(t, err)
	assert.Equal(t, "bad A/Z", err.Error())
	for _, p := range []int{1, 2, 4, 8} {
		tb, s, err := AlignParallel(string(row), string(col), scorer, -1, p)
		require.Error(t, err, "parallelism=%d", p)
		assert.Equal(t, "bad A/Z", err.Error(), "parallelism=%d", p)
		assert.Nil(t, tb)
		assert.Nil(t, s)
	}
}

func TestAlignParallelInvalid(t *testing.T) {
	_, _, err := AlignParallel("A", "C", nil, -1, 2)
	assert.True(t, IsInvalidInput(err))
	_, _, err = AlignParallel("A", "C", MatchMismatch{}, -1, 0)
	assert.True(t, IsInvalidInput(err))
}
