// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

// deletionVariants returns the distinct strings obtainable by applying
// between 0 and maxEditDistance single-character deletions to the
// prefixLength-prefix of term. It is seeded with the prefix itself (no
// deletions) and, when term itself is short enough that a within-budget edit could
// remove it entirely, the empty string.
func (idx *Index) deletionVariants(term string) []string {
	variants := make([]string, 0, 8)
	seen := make(map[string]bool, 8)

	add := func(s string) bool {
		if seen[s] {
			return false
		}
		seen[s] = true
		variants = append(variants, s)
		return true
	}

	if runeLen(term) <= idx.maxEditDistance {
		add("")
	}

	prefix := term
	if runeLen(term) > idx.prefixLength {
		prefix = substring(term, 0, idx.prefixLength)
	}
	add(prefix)

	idx.generateDeletes(prefix, 0, add)
	return variants
}

// generateDeletes recursively deletes one character at a time from word,
// starting at the given edit distance, adding every newly-seen variant via
// add and recursing into it while the budget allows. Duplicate subtrees
// are pruned: a variant already seen (add returns false) is not explored
// again.
func (idx *Index) generateDeletes(word string, editDistance int, add func(string) bool) {
	editDistance++
	if editDistance > idx.maxEditDistance {
		return
	}

	wordLen := runeLen(word)
	if wordLen <= 1 {
		return
	}

	for i := 0; i < wordLen; i++ {
		deleted := removeChar(word, i)
		if add(deleted) && editDistance < idx.maxEditDistance {
			idx.generateDeletes(deleted, editDistance, add)
		}
	}
}
