// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import "errors"

// Error kinds returned by the package. Use errors.Is to test for a kind;
// the concrete error returned to a caller typically wraps one of these
// with additional context via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidArgument is returned when a construction option is out of
	// range (see New) or when LoadDictionary is given a negative field
	// index. Lookup and Insert do not return it: an edit distance above the
	// configured maximum yields a nil result, and a rejected count makes
	// Insert return false.
	ErrInvalidArgument = errors.New("spell: invalid argument")

	// ErrIO is returned when a dictionary or index file cannot be read or
	// written.
	ErrIO = errors.New("spell: i/o failure")

	// ErrFormat is returned when a serialized index cannot be parsed.
	ErrFormat = errors.New("spell: malformed index data")
)
