// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/dgryski/go-farm"
	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-nw/align"
	"github.com/grailbio/bio-nw/dna"
	"github.com/grailbio/bio-nw/encoding/compress"
	"github.com/grailbio/bio-nw/encoding/fasta"
	"github.com/grailbio/bio-nw/encoding/fastq"
	"github.com/minio/highwayhash"
	"v.io/x/lib/cmdline"
)

// batchHeader lists the output columns.
const batchHeader = "#ROW\tCOL\tSCORE\tALIGNED_ROW\tALIGNED_COL\tMIDLINE\tMATCHES\tMISMATCHES\tGAPS\tIDENTITY\tFINGERPRINT"

type batchOpts struct {
	align align.Opts
	// parallelism is the number of pairs aligned at once; 0 means
	// runtime.NumCPU().
	parallelism int
	// upper upper-cases every sequence before aligning.
	upper bool
}

func newCmdBatch() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "batch",
		Short:    "Align FASTA or FASTQ records pairwise and write a TSV",
		ArgsName: "rows cols out.tsv",
		Long: `
Aligns the i-th record of rows against the i-th record of cols, for
every i, and writes one line per pair to out.tsv. Both files must hold the
same number of records. Inputs ending in .fq or .fastq are read as FASTQ,
anything else as FASTA. Inputs and output may end in .gz or .sz to be
(de)compressed.

Pairs whose sequences repeat an earlier pair are aligned only once. The
FINGERPRINT column is a farmhash of the aligned pair, for comparing runs.`,
	}
	alignOpts := addScoringFlags(&cmd.Flags)
	parallelism := cmd.Flags.Int("parallelism", 0, "Maximum number of pairs aligned simultaneously; 0 = runtime.NumCPU()")
	upper := cmd.Flags.Bool("upper", false, "Upper-case all sequences before aligning")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 3 {
			return fmt.Errorf("batch takes rows cols out.tsv, but got %v", argv)
		}
		opts := batchOpts{align: *alignOpts, parallelism: *parallelism, upper: *upper}
		return batch(vcontext.Background(), opts, argv[0], argv[1], argv[2])
	})
	return cmd
}

type batchPair struct {
	rowName, colName string
	row, col         string
	result           align.Alignment
}

// record is one named sequence of a batch input.
type record struct {
	name, seq string
}

// readRecords reads every record of a FASTA or FASTQ file, chosen by suffix.
func readRecords(ctx context.Context, path string) ([]record, error) {
	if fastq.IsFASTQ(path) {
		reads, err := fastq.ReadAll(ctx, path)
		if err != nil {
			return nil, err
		}
		recs := make([]record, len(reads))
		for i, r := range reads {
			recs[i] = record{r.ID, r.Seq}
		}
		return recs, nil
	}
	f, err := fasta.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	names := f.SeqNames()
	recs := make([]record, len(names))
	for i, name := range names {
		recs[i].name = name
		if recs[i].seq, err = f.Seq(name); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func readPairs(ctx context.Context, rowsPath, colsPath string) ([]batchPair, error) {
	rows, err := readRecords(ctx, rowsPath)
	if err != nil {
		return nil, err
	}
	cols, err := readRecords(ctx, colsPath)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(cols) {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("%s has %d records but %s has %d", rowsPath, len(rows), colsPath, len(cols)))
	}
	pairs := make([]batchPair, len(rows))
	for i := range pairs {
		pairs[i] = batchPair{
			rowName: rows[i].name,
			colName: cols[i].name,
			row:     rows[i].seq,
			col:     cols[i].seq,
		}
	}
	return pairs, nil
}

// fingerprint hashes an aligned pair. The separator cannot occur in either
// sequence of a FASTA record.
func fingerprint(a align.Alignment) uint64 {
	buf := make([]byte, 0, len(a.Row)+len(a.Col)+1)
	buf = append(buf, a.Row...)
	buf = append(buf, '\n')
	buf = append(buf, a.Col...)
	return farm.Fingerprint64(buf)
}

type pairKey = [highwayhash.Size]uint8

// uniquePairs returns, for each pair, the index of the first pair with the
// same row and col sequences.
func uniquePairs(pairs []batchPair) []int {
	var (
		zeroSeed = pairKey{}
		buf      []byte
		first    = make(map[pairKey][]int, len(pairs))
		leaders  = make([]int, len(pairs))
	)
	for i := range pairs {
		p := &pairs[i]
		buf = append(buf[:0], p.row...)
		buf = append(buf, '\n')
		buf = append(buf, p.col...)
		h := highwayhash.Sum(buf, zeroSeed[:])
		leaders[i] = i
		for _, j := range first[h] {
			if pairs[j].row == p.row && pairs[j].col == p.col {
				leaders[i] = j
				break
			}
		}
		if leaders[i] == i {
			first[h] = append(first[h], i)
		}
	}
	return leaders
}

func batch(ctx context.Context, opts batchOpts, rowsPath, colsPath, outPath string) (err error) {
	if _, err = opts.align.Scorer(); err != nil {
		return err
	}
	pairs, err := readPairs(ctx, rowsPath, colsPath)
	if err != nil {
		return err
	}
	if opts.upper {
		for i := range pairs {
			pairs[i].row = dna.Normalize(pairs[i].row)
			pairs[i].col = dna.Normalize(pairs[i].col)
		}
	}
	parallelism := opts.parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	leaders := uniquePairs(pairs)
	var todo []int
	for i, l := range leaders {
		if l == i {
			todo = append(todo, i)
		}
	}
	log.Printf("aligning %d pairs (%d distinct) from %s and %s, parallelism %d",
		len(pairs), len(todo), rowsPath, colsPath, parallelism)
	err = traverse.Limit(parallelism).Each(len(todo), func(k int) error {
		p := &pairs[todo[k]]
		var e error
		if p.result, e = align.Global(p.row, p.col, opts.align); e != nil {
			return errors.E(e, "align", p.rowName, "against", p.colName)
		}
		log.Debug.Printf("%s/%s: score %d", p.rowName, p.colName, p.result.Score)
		return nil
	})
	if err != nil {
		return err
	}
	for i, l := range leaders {
		pairs[i].result = pairs[l].result
	}
	if err = writeBatch(ctx, outPath, pairs); err != nil {
		return err
	}
	log.Printf("wrote %d alignments to %s", len(pairs), outPath)
	return nil
}

func writeBatch(ctx context.Context, outPath string, pairs []batchPair) (err error) {
	out, err := file.Create(ctx, outPath)
	if err != nil {
		return errors.E(err, "create", outPath)
	}
	defer file.CloseAndReport(ctx, out, &err)
	cw := compress.NewWriter(out.Writer(ctx), outPath)
	defer func() {
		if e := cw.Close(); e != nil && err == nil {
			err = e
		}
	}()

	w := tsv.NewWriter(cw)
	w.WriteString(batchHeader)
	if err = w.EndLine(); err != nil {
		return err
	}
	for _, p := range pairs {
		a := p.result
		w.WriteString(p.rowName)
		w.WriteString(p.colName)
		w.WriteInt64(int64(a.Score))
		w.WriteString(a.Row)
		w.WriteString(a.Col)
		w.WriteString(a.Midline)
		w.WriteInt64(int64(a.Matches))
		w.WriteInt64(int64(a.Mismatches))
		w.WriteInt64(int64(a.Gaps))
		w.WriteString(strconv.FormatFloat(a.Identity(), 'f', 4, 64))
		w.WriteString(fmt.Sprintf("%016x", fingerprint(a)))
		if err = w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
