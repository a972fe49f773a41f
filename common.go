// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import "runtime"

// For performance reasons, the algorithm core lacks error checking and
// relies on the entry points in sais.go to establish its invariants:
// a zeroed working area of exactly len(text) entries, a scratch buffer of at
// least numSyms entries, and every symbol within [0, numSyms).

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
