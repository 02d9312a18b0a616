// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import "github.com/eskriett/strmet"

// DistanceFunc computes the distance between two strings, capped at
// maxDistance. A negative return signals that the true distance exceeds
// maxDistance and must be treated as a rejection by the caller. The
// function must be deterministic and symmetric.
type DistanceFunc func(a, b string, maxDistance int) int

// DefaultDistanceFunc is the Damerau-Levenshtein distance from strmet,
// used by a new Index unless overridden with WithDistanceFunc.
var DefaultDistanceFunc DistanceFunc = strmet.DamerauLevenshtein
