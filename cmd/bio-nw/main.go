// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
bio-nw computes Needleman-Wunsch global alignments of nucleotide sequences.

	bio-nw align [flags] ROW COL
	bio-nw batch [flags] ROWS COLS OUT.tsv

"align" aligns two sequences given literally or as FASTA regions and prints
the alignment. "batch" aligns the i-th record of ROWS against the i-th
record of COLS for every i and writes one TSV line per pair; ROWS and COLS
are FASTA or FASTQ files.
*/
package main

import (
	"flag"

	"github.com/grailbio/bio-nw/align"
	"v.io/x/lib/cmdline"
)

// addScoringFlags registers the flags shared by all subcommands and returns
// the Opts they fill in.
func addScoringFlags(fs *flag.FlagSet) *align.Opts {
	opts := align.DefaultOpts
	fs.StringVar(&opts.Scoring, "scoring", opts.Scoring,
		"Pairwise rule: '"+align.ScoringMatchMismatch+"' or '"+align.ScoringTransitionTransversion+"'")
	fs.IntVar(&opts.Gap, "gap", opts.Gap, "Score added per gap position")
	fs.IntVar(&opts.Match, "match", opts.Match, "Score of two identical symbols")
	fs.IntVar(&opts.Mismatch, "mismatch", opts.Mismatch, "Score of two different symbols under match-mismatch scoring")
	fs.IntVar(&opts.Transition, "transition", opts.Transition,
		"Score of a purine<->purine or pyrimidine<->pyrimidine substitution under transition-transversion scoring")
	fs.IntVar(&opts.Transversion, "transversion", opts.Transversion,
		"Score of a purine<->pyrimidine substitution under transition-transversion scoring")
	fs.IntVar(&opts.Parallelism, "fill-parallelism", opts.Parallelism,
		"Goroutines used to fill each alignment matrix; <= 1 fills sequentially")
	return &opts
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-nw",
			Short:    "Needleman-Wunsch global alignment of nucleotide sequences",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdAlign(),
				newCmdBatch(),
			},
		})
}
