package align_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/bio-nw/align"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestGlobal(t *testing.T) {
	opts := align.DefaultOpts
	opts.Gap = -1
	a, err := align.Global("GCATGCT", "GATTACA", opts)
	assert.NoError(t, err)
	expect.EQ(t, a.Score, 0)
	expect.EQ(t, a.Row, "GCA-TGCT")
	expect.EQ(t, a.Col, "G-ATTACA")
	expect.EQ(t, a.Midline, "| | |:| ")
	expect.EQ(t, a.Matches, 4)
	expect.EQ(t, a.Mismatches, 2)
	expect.EQ(t, a.Gaps, 2)
	expect.EQ(t, a.Len(), 8)
	expect.EQ(t, a.Identity(), 0.5)
}

func TestGlobalParallelMatchesSequential(t *testing.T) {
	opts := align.DefaultOpts
	opts.Scoring = align.ScoringTransitionTransversion
	opts.Match = 2
	want, err := align.Global("GCATGCTAGCTAGCATCGA", "GATTACAGATTACA", opts)
	assert.NoError(t, err)
	opts.Parallelism = 4
	got, err := align.Global("GCATGCTAGCTAGCATCGA", "GATTACAGATTACA", opts)
	assert.NoError(t, err)
	expect.EQ(t, got, want)
}

func TestGlobalErrors(t *testing.T) {
	opts := align.DefaultOpts
	opts.Scoring = "nope"
	_, err := align.Global("A", "A", opts)
	expect.True(t, align.IsInvalidInput(err), "err=%v", err)

	opts = align.DefaultOpts
	opts.Scoring = align.ScoringTransitionTransversion
	_, err = align.Global("ACGU", "ACGT", opts)
	expect.True(t, align.IsUnrecognizedSymbol(err), "err=%v", err)
}

func TestSummarize(t *testing.T) {
	a, err := align.Summarize("ACGT-A", "ATGTCA")
	assert.NoError(t, err)
	expect.EQ(t, a.Midline, "|:|| |")
	expect.EQ(t, a.Matches, 4)
	expect.EQ(t, a.Mismatches, 1)
	expect.EQ(t, a.Gaps, 1)

	a, err = align.Summarize("", "")
	assert.NoError(t, err)
	expect.EQ(t, a.Identity(), 0.0)

	_, err = align.Summarize("AC", "A")
	expect.True(t, align.IsInvalidInput(err), "err=%v", err)
}

// With match 0, mismatch -1 and gap -1 the optimal global score is the
// negated edit distance.
func TestGlobalLevenshtein(t *testing.T) {
	opts := align.Opts{Scoring: align.ScoringMatchMismatch, Match: 0, Mismatch: -1, Gap: -1}
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 200; iter++ {
		row := randomSeq(r, r.Intn(12))
		col := randomSeq(r, r.Intn(12))
		a, err := align.Global(row, col, opts)
		assert.NoError(t, err)
		expect.EQ(t, -a.Score, matchr.Levenshtein(row, col), "row=%s col=%s", row, col)
	}
}

func TestWriteMatrices(t *testing.T) {
	tb, s, err := align.Align("WHY", "WHAT", matchMismatch, -2)
	assert.NoError(t, err)
	var buf bytes.Buffer
	assert.NoError(t, align.WriteMatrices(&buf, tb, s, "WHY", "WHAT"))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header + 4 rows, blank line, header + 4 rows.
	assert.EQ(t, len(lines), 11)
	expect.EQ(t, strings.Fields(lines[0]), []string{"-", "W", "H", "A", "T"})
	expect.EQ(t, strings.Fields(lines[4]), []string{"Y", "-6", "-3", "0", "1", "-1"})
	expect.EQ(t, lines[5], "")
	expect.EQ(t, strings.Fields(lines[7]), []string{"-", "·", "←", "←", "←", "←"})
	expect.EQ(t, strings.Fields(lines[10]), []string{"Y", "↑", "↑", "↑", "↖", "↖"})

	buf.Reset()
	assert.NoError(t, align.WriteMatrices(&buf, nil, s, "WHY", "WHAT"))
	expect.EQ(t, strings.Count(buf.String(), "\n"), 5)

	err = align.WriteMatrices(&buf, tb, nil, "WHY", "WHA")
	expect.True(t, align.IsInvalidInput(err), "err=%v", err)

	// A traceback of the wrong shape is reported before the score grid is
	// written.
	badTB, _, err := align.Align("WH", "WHAT", matchMismatch, -2)
	assert.NoError(t, err)
	buf.Reset()
	err = align.WriteMatrices(&buf, badTB, s, "WHY", "WHAT")
	expect.True(t, align.IsInvalidInput(err), "err=%v", err)
	expect.EQ(t, buf.Len(), 0)
}

func TestTracebackMismatchedScore(t *testing.T) {
	tb, s, err := align.DefaultOpts.Fill("ACGT", "ACG")
	assert.NoError(t, err)
	_, err = align.Traceback(tb, s, "ACGT", "AC")
	expect.True(t, align.IsInvalidInput(err), "err=%v", err)
	_, err = align.Traceback(tb, nil, "ACGT", "ACG")
	expect.True(t, align.IsInvalidInput(err), "err=%v", err)
	a, err := align.Traceback(tb, s, "ACGT", "ACG")
	assert.NoError(t, err)
	expect.EQ(t, a.Score, s.Final())
}
