// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadDictionaryFile opens path and loads it into idx via LoadDictionary,
// closing the file when done.
func (idx *Index) LoadDictionaryFile(path string, termIndex, countIndex int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	return idx.LoadDictionary(f, termIndex, countIndex)
}

// LoadDictionary reads a whitespace-delimited frequency dictionary from r,
// one entry per line, and Inserts each into idx. termIndex and countIndex
// select which whitespace-delimited field of each line holds the term and
// its count (0-based); a common corpus format puts the term first and the
// count second (termIndex=0, countIndex=1). Lines with fewer than
// max(termIndex, countIndex)+1 fields are skipped.
//
// It returns the number of lines successfully inserted.
func (idx *Index) LoadDictionary(r io.Reader, termIndex, countIndex int) (int, error) {
	if termIndex < 0 || countIndex < 0 {
		return 0, fmt.Errorf("%w: termIndex and countIndex must be >= 0", ErrInvalidArgument)
	}

	needed := termIndex
	if countIndex > needed {
		needed = countIndex
	}
	needed++

	idx.mu.Lock()
	defer idx.mu.Unlock()

	scanner := bufio.NewScanner(r)
	// Dictionary lines can be long (compound entries, CSV-ish frequency
	// lists); grow past bufio's default 64KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inserted := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < needed {
			continue
		}

		count, err := strconv.Atoi(fields[countIndex])
		if err != nil {
			continue
		}

		if idx.insertLocked(fields[termIndex], count) {
			inserted++
		}
	}
	if err := scanner.Err(); err != nil {
		return inserted, fmt.Errorf("%w: %v", ErrIO, err)
	}

	idx.belowThreshold = make(map[string]uint64)

	return inserted, nil
}
