// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
)

// persistedIndex is the on-disk envelope written by Save and read by Load.
// Configuration (maxEditDistance, prefixLength, countThreshold,
// useConfusables) is deliberately not part of it: a saved index is meant to
// be reloaded by a caller that already knows, or re-derives, its own
// configuration via New/NewFromConfig, matching §6's "persisted index
// format" contract.
type persistedIndex struct {
	Words     map[string]uint64   `json:"words"`
	Deletes   map[string][]string `json:"deletes"`
	MaxLength int                 `json:"max_length"`
}

// Save writes idx to w as a JSON envelope, gzip-compressed when compressed
// is true.
func (idx *Index) Save(w io.Writer, compressed bool) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	envelope := persistedIndex{
		Words:     idx.words,
		Deletes:   make(map[string][]string, len(idx.deletes)),
		MaxLength: idx.maxLength,
	}
	for h, terms := range idx.deletes {
		envelope.Deletes[strconv.FormatUint(uint64(h), 10)] = terms
	}

	var dst io.Writer = w
	var gz *gzip.Writer
	if compressed {
		gz = gzip.NewWriter(w)
		dst = gz
	}

	enc := json.NewEncoder(dst)
	if err := enc.Encode(envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}

// SaveFile creates (or truncates) path and Saves idx to it.
func (idx *Index) SaveFile(path string, compressed bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	return idx.Save(f, compressed)
}

// Load replaces idx's words, deletes, and maxLength with the contents read
// from r (see Save). Configuration options already set on idx (edit
// distance, prefix length, confusables) are left untouched; skeletons are
// rebuilt from the loaded words when useConfusables is enabled.
func (idx *Index) Load(r io.Reader, compressed bool) error {
	var src io.Reader = r
	if compressed {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		defer gz.Close()
		src = gz
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%w: not a valid persisted index", ErrFormat)
	}

	doc := gjson.ParseBytes(raw)

	words := make(map[string]uint64)
	doc.Get("words").ForEach(func(key, value gjson.Result) bool {
		words[key.String()] = value.Uint()
		return true
	})

	deletes := make(map[uint32][]string)
	doc.Get("deletes").ForEach(func(key, value gjson.Result) bool {
		h, err := strconv.ParseUint(key.String(), 10, 32)
		if err != nil {
			return true
		}
		terms := make([]string, 0, len(value.Array()))
		for _, t := range value.Array() {
			terms = append(terms, t.String())
		}
		deletes[uint32(h)] = terms
		return true
	})

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.words = words
	idx.deletes = deletes
	idx.maxLength = int(doc.Get("max_length").Int())
	idx.belowThreshold = make(map[string]uint64)

	idx.skeletons = make(map[string][]string)
	if idx.useConfusables {
		for term := range idx.words {
			sk := confusableSkeleton(term)
			idx.skeletons[sk] = append(idx.skeletons[sk], term)
		}
	}

	return nil
}

// LoadFile opens path and Loads idx from it.
func (idx *Index) LoadFile(path string, compressed bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	return idx.Load(f, compressed)
}
