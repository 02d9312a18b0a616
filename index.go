// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import (
	"fmt"
	"math"
	"sync"
)

const (
	defaultMaxEditDistance = 2
	defaultPrefixLength    = 7
	defaultCountThreshold  = 1
)

// Index holds a dictionary's words, their precomputed deletion variants,
// and the bookkeeping needed to answer Lookup and LookupCompound queries.
// It is built by repeated calls to Insert (directly or via LoadDictionary)
// and is safe for concurrent read-only use once construction is finished;
// see Freeze.
type Index struct {
	mu sync.RWMutex

	maxEditDistance int
	prefixLength    int
	countThreshold  int
	useConfusables  bool
	distanceFn      DistanceFunc

	words          map[string]uint64
	belowThreshold map[string]uint64
	deletes        map[uint32][]string
	skeletons      map[string][]string
	maxLength      int
}

// Option configures an Index at construction time.
type Option func(*Index) error

// WithMaxEditDistance sets the upper bound on deletions generated during
// indexing (default 2).
func WithMaxEditDistance(n int) Option {
	return func(idx *Index) error {
		if n < 0 {
			return fmt.Errorf("%w: max edit distance must be >= 0", ErrInvalidArgument)
		}
		idx.maxEditDistance = n
		return nil
	}
}

// WithPrefixLength sets how many leading characters of each word
// participate in deletion generation and lookup (default 7).
func WithPrefixLength(n int) Option {
	return func(idx *Index) error {
		if n < 1 {
			return fmt.Errorf("%w: prefix length must be >= 1", ErrInvalidArgument)
		}
		idx.prefixLength = n
		return nil
	}
}

// WithCountThreshold sets the minimum frequency for a term's promotion
// from the below-threshold set into the main dictionary (default 1).
func WithCountThreshold(n int) Option {
	return func(idx *Index) error {
		if n < 0 {
			return fmt.Errorf("%w: count threshold must be >= 0", ErrInvalidArgument)
		}
		idx.countThreshold = n
		return nil
	}
}

// WithDistanceFunc overrides the plug-in distance function used by Lookup
// and LookupCompound. The default is strmet.DamerauLevenshtein.
func WithDistanceFunc(fn DistanceFunc) Option {
	return func(idx *Index) error {
		if fn == nil {
			return fmt.Errorf("%w: distance function must not be nil", ErrInvalidArgument)
		}
		idx.distanceFn = fn
		return nil
	}
}

// WithConfusables enables a homoglyph-aware pre-pass in Lookup: words whose
// Unicode confusable skeleton matches the query's skeleton are offered as
// candidates before the deletion-based search runs. Such a word is kept
// only when its edit distance to the query is within the lookup's edit
// distance budget.
func WithConfusables(enabled bool) Option {
	return func(idx *Index) error {
		idx.useConfusables = enabled
		return nil
	}
}

// New creates an empty Index configured by opts.
func New(opts ...Option) (*Index, error) {
	idx := &Index{
		maxEditDistance: defaultMaxEditDistance,
		prefixLength:    defaultPrefixLength,
		countThreshold:  defaultCountThreshold,
		distanceFn:      DefaultDistanceFunc,
		words:           make(map[string]uint64),
		belowThreshold:  make(map[string]uint64),
		deletes:         make(map[uint32][]string),
		skeletons:       make(map[string][]string),
	}
	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}
	if idx.prefixLength <= idx.maxEditDistance {
		return nil, fmt.Errorf("%w: prefix length must be greater than max edit distance", ErrInvalidArgument)
	}
	return idx, nil
}

// MaxLength returns the length, in runes, of the longest term currently in
// the dictionary.
func (idx *Index) MaxLength() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.maxLength
}

// Freeze documents that construction (Insert / LoadDictionary / Load) has
// finished. It performs no state change: the Index's internal maps are
// already guarded by a mutex, so concurrent readers are safe with or
// without calling Freeze. Callers that want the documented "single-writer,
// then many readers" lifecycle of §5 should stop calling Insert after
// calling Freeze.
func (idx *Index) Freeze() {}

// Insert adds term with the given count to the dictionary, following the
// promotion rules:
//
//  1. count <= 0 is rejected when countThreshold > 0; otherwise it is
//     treated as 0.
//  2. A term already in the below-threshold set has count added
//     (saturating); once it reaches countThreshold it is promoted.
//  3. A term already in words has count added (saturating); no new
//     deletions are generated.
//  4. A term below countThreshold is parked in the below-threshold set.
//  5. Otherwise the term is stored, deletion variants are generated, and
//     the deletion map is updated.
//
// Insert reports whether term now resides in the main dictionary as a
// result of this call (true only the first time a term crosses the
// threshold).
func (idx *Index) Insert(term string, count int) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.insertLocked(term, count)
}

func (idx *Index) insertLocked(term string, count int) bool {
	var c uint64
	if count <= 0 {
		if idx.countThreshold > 0 {
			return false
		}
		c = 0
	} else {
		c = uint64(count)
	}

	skipWordsCheck := false
	if idx.countThreshold > 1 {
		if prev, ok := idx.belowThreshold[term]; ok {
			c = saturatingAdd(prev, c)
			if c >= uint64(idx.countThreshold) {
				delete(idx.belowThreshold, term)
				skipWordsCheck = true
			} else {
				idx.belowThreshold[term] = c
				return false
			}
		}
	}

	if !skipWordsCheck {
		if prev, ok := idx.words[term]; ok {
			idx.words[term] = saturatingAdd(prev, c)
			return false
		}
		if c < uint64(idx.countThreshold) {
			idx.belowThreshold[term] = c
			return false
		}
	}

	idx.words[term] = c
	if l := runeLen(term); l > idx.maxLength {
		idx.maxLength = l
	}

	for _, d := range idx.deletionVariants(term) {
		h := hashString(d)
		idx.deletes[h] = append(idx.deletes[h], term)
	}

	if idx.useConfusables {
		sk := confusableSkeleton(term)
		idx.skeletons[sk] = append(idx.skeletons[sk], term)
	}

	return true
}

// GetEntry returns the stored count for word and whether it is present in
// the main dictionary (below-threshold terms are not reported).
func (idx *Index) GetEntry(word string) (count uint64, ok bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	count, ok = idx.words[word]
	return
}

// RemoveEntry removes word from the dictionary. It reports whether the
// word was present. Note that this does not retract the word's deletion
// variants from the deletes map (§3 invariant 4: the deletion map is
// append-only outside of a full rebuild); a removed word's deletions may
// still surface it as a stale candidate, which Lookup skips because the
// word is no longer in the dictionary.
func (idx *Index) RemoveEntry(word string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if _, ok := idx.words[word]; !ok {
		return false
	}
	delete(idx.words, word)
	return true
}

func saturatingAdd(a, b uint64) uint64 {
	if math.MaxUint64-a < b {
		return math.MaxUint64
	}
	return a + b
}

func runeLen(s string) int {
	return len([]rune(s))
}

// substring returns the runes of s in the half-open range [start, end),
// treating indexes past the end of s as the empty tail.
func substring(s string, start, end int) string {
	runes := []rune(s)
	if start >= len(runes) {
		return ""
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

// removeChar returns s with the rune at index removed.
func removeChar(s string, index int) string {
	runes := []rune(s)
	return string(runes[:index]) + string(runes[index+1:])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// hashString is an FNV-1a hash of the UTF-8 bytes of s, used to key the
// deletes map. Any stable non-cryptographic hash works here: the lookup
// filters in lookup.go already tolerate the rare collision.
func hashString(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
