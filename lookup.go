// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import "sort"

// Verbosity controls how many results Lookup returns.
type Verbosity int

const (
	// VerbosityTop returns the single suggestion with the smallest edit
	// distance, breaking ties toward the highest frequency.
	VerbosityTop Verbosity = iota

	// VerbosityClosest returns every suggestion tied at the smallest edit
	// distance found.
	VerbosityClosest

	// VerbosityAll returns every suggestion within editDistanceMax. This
	// is slower: it cannot use the early-termination pruning the other
	// two verbosities rely on.
	VerbosityAll
)

// Suggestion is a single candidate correction.
type Suggestion struct {
	Term     string
	Distance int
	Count    uint64
}

// suggestions implements sort.Interface for the §3 ordering: distance
// ascending, then count descending.
type suggestions []Suggestion

func (s suggestions) Len() int      { return len(s) }
func (s suggestions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s suggestions) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	return s[i].Count > s[j].Count
}

// Lookup returns ranked candidate corrections for query. verbosity selects
// how many results to return; editDistanceMax bounds the search and must
// not exceed the Index's configured max edit distance.
func (idx *Index) Lookup(query string, verbosity Verbosity, editDistanceMax int) []Suggestion {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if editDistanceMax > idx.maxEditDistance {
		return nil
	}

	queryLen := runeLen(query)
	if queryLen-editDistanceMax > idx.maxLength {
		return nil
	}

	var results []Suggestion
	seenSuggestions := map[string]bool{query: true}
	d2 := editDistanceMax

	// integrate folds a scored candidate into results per the verbosity
	// policy, tightening d2 for verbosities that support early
	// termination. It is shared by the confusable pre-pass and the main
	// deletion-based search below. Terms no longer in words (see
	// RemoveEntry) are skipped.
	integrate := func(term string, distance int) {
		count, ok := idx.words[term]
		if !ok {
			return
		}
		switch verbosity {
		case VerbosityTop:
			if len(results) > 0 {
				if distance < d2 || count > results[0].Count {
					d2 = distance
					results[0] = Suggestion{Term: term, Distance: distance, Count: count}
				}
				return
			}
			d2 = distance
			results = append(results, Suggestion{Term: term, Distance: distance, Count: count})
		case VerbosityClosest:
			if len(results) > 0 && distance < d2 {
				results = results[:0]
			}
			d2 = distance
			results = append(results, Suggestion{Term: term, Distance: distance, Count: count})
		case VerbosityAll:
			results = append(results, Suggestion{Term: term, Distance: distance, Count: count})
		}
	}

	if count, ok := idx.words[query]; ok {
		results = append(results, Suggestion{Term: query, Distance: 0, Count: count})
		// Nothing can beat an exact match; for the top-1/closest-cluster
		// verbosities there is no reason to search further.
		if verbosity != VerbosityAll {
			return results
		}
	}

	if editDistanceMax == 0 {
		return results
	}

	for _, confusable := range idx.confusableCandidates(query) {
		if seenSuggestions[confusable] {
			continue
		}
		distance := idx.distanceFn(query, confusable, d2)
		if distance < 0 || distance > d2 {
			continue
		}
		seenSuggestions[confusable] = true
		integrate(confusable, distance)
	}

	queryPrefixLen := minInt(queryLen, idx.prefixLength)
	candidates := []string{substring(query, 0, queryPrefixLen)}
	seenDeletions := map[string]bool{}

	for ci := 0; ci < len(candidates); ci++ {
		candidate := candidates[ci]
		candidateLen := runeLen(candidate)
		diff := queryPrefixLen - candidateLen

		if diff > d2 {
			if verbosity == VerbosityAll {
				continue
			}
			break
		}

		for _, s := range idx.deletes[hashString(candidate)] {
			sLen := runeLen(s)

			if s == query {
				continue
			}
			if absInt(sLen-queryLen) > d2 || sLen < candidateLen || (sLen == candidateLen && s != candidate) {
				continue
			}
			sPrefixLen := minInt(sLen, idx.prefixLength)
			if sPrefixLen > queryPrefixLen && sPrefixLen-candidateLen > d2 {
				continue
			}

			var distance int
			switch {
			case candidateLen == 0:
				distance = minInt(queryLen, sLen)
				if distance > d2 || seenSuggestions[s] {
					continue
				}
				seenSuggestions[s] = true
			case sLen == 1:
				if runeIn(query, s) {
					distance = queryLen - 1
				} else {
					distance = queryLen
				}
				if distance > d2 || seenSuggestions[s] {
					continue
				}
				seenSuggestions[s] = true
			default:
				if suffixMismatch(query, s, queryLen, sLen, candidateLen, editDistanceMax, idx.prefixLength) {
					continue
				}
				if verbosity != VerbosityAll && !deleteInSuggestionPrefix(candidate, candidateLen, s, sLen, idx.prefixLength) {
					continue
				}
				if seenSuggestions[s] {
					continue
				}
				seenSuggestions[s] = true
				distance = idx.distanceFn(query, s, d2)
				if distance < 0 {
					continue
				}
			}

			if distance > d2 {
				continue
			}
			integrate(s, distance)
		}

		if diff < editDistanceMax && candidateLen <= idx.prefixLength {
			if verbosity != VerbosityAll && diff > d2 {
				continue
			}
			for i := 0; i < candidateLen; i++ {
				deleted := removeChar(candidate, i)
				if !seenDeletions[deleted] {
					seenDeletions[deleted] = true
					candidates = append(candidates, deleted)
				}
			}
		}
	}

	if len(results) > 1 {
		sort.Stable(suggestions(results))
	}
	return results
}

// runeIn reports whether the single-rune string needle occurs anywhere in
// haystack.
func runeIn(haystack, needle string) bool {
	r := []rune(needle)[0]
	for _, c := range haystack {
		if c == r {
			return true
		}
	}
	return false
}

// suffixMismatch implements the suffix-mismatch pruning filter: it reports
// true when the unaligned suffixes of query and suggestion alone already
// exceed the edit budget, so the caller can reject the pair without
// invoking the distance function. fixedEditDistanceMax is the
// editDistanceMax argument Lookup was called with, not the shrinking
// cutoff d2.
func suffixMismatch(query, suggestion string, queryLen, suggestionLen, candidateLen, fixedEditDistanceMax, prefixLength int) bool {
	lenMin := 0
	if prefixLength-fixedEditDistanceMax == candidateLen {
		lenMin = minInt(queryLen, suggestionLen) - prefixLength
	}
	q := []rune(query)
	s := []rune(suggestion)

	if prefixLength-fixedEditDistanceMax == candidateLen && lenMin > 1 {
		if lenMin <= queryLen && lenMin <= suggestionLen {
			qTail := string(q[queryLen+1-lenMin:])
			sTail := string(s[suggestionLen+1-lenMin:])
			if qTail != sTail {
				return true
			}
		}
	}

	if lenMin > 0 && lenMin <= queryLen && lenMin <= suggestionLen {
		qc := q[queryLen-lenMin]
		sc := s[suggestionLen-lenMin]
		if qc != sc {
			if q[queryLen-lenMin-1] != sc || qc != s[suggestionLen-lenMin-1] {
				return true
			}
		}
	}

	return false
}

// deleteInSuggestionPrefix reports whether deleteWord occurs as a
// subsequence of suggestion's first prefixLength characters. Every true
// match from the deletes map has some deletion equal to candidate; this
// check confirms candidate is reachable as a deletion of suggestion's
// prefix specifically, which rules out hash collisions.
func deleteInSuggestionPrefix(deleteWord string, deleteLen int, suggestion string, suggestionLen, prefixLength int) bool {
	if deleteLen == 0 {
		return true
	}
	if prefixLength < suggestionLen {
		suggestionLen = prefixLength
	}
	s := []rune(suggestion)
	j := 0
	for _, c := range deleteWord {
		for j < suggestionLen && c != s[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
		j++
	}
	return true
}
