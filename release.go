// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !debug && !gofuzz

package sais

// debugVerify enables a postcondition check of every constructed suffix
// array. The check can take quadratic time on repetitive inputs, so it is
// compiled out of release builds; the tests invoke verifySA directly.
const debugVerify = false
