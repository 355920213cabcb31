// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dna holds nucleotide lookup tables shared by the scorers and the
// command line tools: chemical classes, complements and case folding.
package dna

// ChemicalClass groups nucleotides by ring structure.
type ChemicalClass uint8

const (
	// Unknown is returned for symbols outside {A,C,G,T} (either case).
	Unknown ChemicalClass = iota
	// Purine is the class of A and G.
	Purine
	// Pyrimidine is the class of C and T.
	Pyrimidine
)

func (c ChemicalClass) String() string {
	switch c {
	case Purine:
		return "purine"
	case Pyrimidine:
		return "pyrimidine"
	}
	return "unknown"
}

var classTable [256]ChemicalClass

// complementTable maps 'A'/'a' to 'T', 'C'/'c' to 'G', 'G'/'g' to 'C',
// 'T'/'t' to 'A', and everything else to 'N'.
var complementTable [256]byte

func init() {
	for i := range complementTable {
		complementTable[i] = 'N'
	}
	for _, p := range []struct {
		base, comp byte
		class      ChemicalClass
	}{
		{'A', 'T', Purine},
		{'G', 'C', Purine},
		{'C', 'G', Pyrimidine},
		{'T', 'A', Pyrimidine},
	} {
		classTable[p.base] = p.class
		classTable[p.base+'a'-'A'] = p.class
		complementTable[p.base] = p.comp
		complementTable[p.base+'a'-'A'] = p.comp
	}
}

// Class returns the chemical class of b. ok is false when b is not one of
// A, C, G, T (case-insensitive).
func Class(b byte) (class ChemicalClass, ok bool) {
	class = classTable[b]
	return class, class != Unknown
}

// IsTransition reports whether a and b are different nucleotides of the same
// chemical class. It is false when either symbol is not a nucleotide.
func IsTransition(a, b byte) bool {
	ca, okA := Class(a)
	cb, okB := Class(b)
	return okA && okB && ca == cb && Upper(a) != Upper(b)
}

// ReverseComplement returns the reverse complement of seq. Symbols other than
// A, C, G, T (either case) become 'N'. The output is upper case.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = complementTable[seq[i]]
	}
	return string(out)
}

// Upper returns b upper-cased if it is an ASCII lower-case letter, and b
// otherwise.
func Upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// Normalize upper-cases the ASCII letters of seq and leaves other bytes
// alone.
func Normalize(seq string) string {
	buf := []byte(seq)
	for i, b := range buf {
		buf[i] = Upper(b)
	}
	return string(buf)
}
