// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-nw/align"
	"github.com/grailbio/bio-nw/dna"
	"github.com/grailbio/bio-nw/encoding/fasta"
	"v.io/x/lib/cmdline"
)

type alignFlags struct {
	opts       *align.Opts
	rowFasta   string
	colFasta   string
	revComp    bool
	upper      bool
	showMatrix bool
}

func newCmdAlign() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "align",
		Short:    "Align two sequences and print the result",
		ArgsName: "row col",
		Long: `
Aligns ROW (stacked down the rows of the score matrix) against COL (across
the columns) and prints the score, the aligned pair with a midline, and match
statistics.

ROW and COL are literal sequences unless -row-fasta / -col-fasta is set, in
which case they name a region of that FASTA file: either a sequence name or
'name:begin-end' with [begin, end] a 1-based closed interval. An empty
argument ('') selects the first sequence of the file.`,
	}
	flags := alignFlags{opts: addScoringFlags(&cmd.Flags)}
	cmd.Flags.StringVar(&flags.rowFasta, "row-fasta", "", "FASTA file to read ROW from")
	cmd.Flags.StringVar(&flags.colFasta, "col-fasta", "", "FASTA file to read COL from")
	cmd.Flags.BoolVar(&flags.revComp, "revcomp", false, "Align ROW against the reverse complement of COL")
	cmd.Flags.BoolVar(&flags.upper, "upper", false, "Upper-case both sequences before aligning")
	cmd.Flags.BoolVar(&flags.showMatrix, "matrix", false, "Also print the score and traceback matrices")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("align takes row and col arguments, but got %v", argv)
		}
		return runAlign(vcontext.Background(), env.Stdout, flags, argv[0], argv[1])
	})
	return cmd
}

// loadSeq returns arg itself, or the region arg of the FASTA file at path
// when path is set.
func loadSeq(ctx context.Context, path, arg string) (string, error) {
	if path == "" {
		return arg, nil
	}
	f, err := fasta.Open(ctx, path)
	if err != nil {
		return "", err
	}
	return fasta.Lookup(f, arg)
}

func runAlign(ctx context.Context, out io.Writer, flags alignFlags, rowArg, colArg string) error {
	row, err := loadSeq(ctx, flags.rowFasta, rowArg)
	if err != nil {
		return err
	}
	col, err := loadSeq(ctx, flags.colFasta, colArg)
	if err != nil {
		return err
	}
	if flags.upper {
		row, col = dna.Normalize(row), dna.Normalize(col)
	}
	if flags.revComp {
		col = dna.ReverseComplement(col)
	}
	log.Debug.Printf("aligning %d x %d symbols with %+v", len(row), len(col), *flags.opts)

	tb, s, err := flags.opts.Fill(row, col)
	if err != nil {
		return err
	}
	a, err := align.Traceback(tb, s, row, col)
	if err != nil {
		return err
	}
	if flags.showMatrix {
		if err := align.WriteMatrices(out, tb, s, row, col); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return writeAlignment(out, a)
}

func writeAlignment(out io.Writer, a align.Alignment) error {
	_, err := fmt.Fprintf(out, "score\t%d\nrow\t%s\n\t%s\ncol\t%s\nlength\t%d\nmatches\t%d\nmismatches\t%d\ngaps\t%d\nidentity\t%.4f\n",
		a.Score, a.Row, a.Midline, a.Col, a.Len(), a.Matches, a.Mismatches, a.Gaps, a.Identity())
	return err
}
