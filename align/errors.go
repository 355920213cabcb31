// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Errors produced by this package carry one of three kinds:
//
//   errors.Invalid      - bad arguments: negative lengths, nil scorer,
//                         traceback matrix of the wrong shape.
//   errors.NotSupported - a Scorer met a symbol outside its alphabet.
//   errors.Integrity    - a traceback matrix violates the fill invariants.
//
// None of them is ever recovered from inside the package.

func invalidInputf(format string, args ...interface{}) error {
	return errors.E(errors.Invalid, fmt.Sprintf(format, args...))
}

func unrecognizedSymbol(b byte) error {
	return errors.E(errors.NotSupported, fmt.Sprintf("unrecognized symbol %q", b))
}

func corruptTracebackf(format string, args ...interface{}) error {
	return errors.E(errors.Integrity, fmt.Sprintf(format, args...))
}

// IsInvalidInput reports whether err was caused by invalid arguments.
func IsInvalidInput(err error) bool { return errors.Is(errors.Invalid, err) }

// IsUnrecognizedSymbol reports whether err was raised by a Scorer for a
// symbol outside its alphabet.
func IsUnrecognizedSymbol(err error) bool { return errors.Is(errors.NotSupported, err) }

// IsCorruptTraceback reports whether err was raised while walking a traceback
// matrix that Align could not have produced.
func IsCorruptTraceback(err error) bool { return errors.Is(errors.Integrity, err) }
