// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

// Package spell provides approximate-match spelling correction for
// natural-language text, including compound words where spaces may be
// missing or spuriously inserted.
//
// The package builds a SymSpell (Symmetric Delete) index over a dictionary
// of terms and their frequencies, then offers two query operations:
// Lookup, which finds close dictionary terms for a single token, and
// LookupCompound, which tokenizes a whole input string and decides for
// each token whether to keep it, replace it, merge it with its neighbor,
// or split it, whichever yields the smallest overall edit distance.
package spell
