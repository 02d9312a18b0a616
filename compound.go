// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import (
	"math"
	"strings"
)

// unboundedMaxDistance is passed to the plug-in distance function when the
// compound resolver needs a genuine, not-cutoff-limited distance (e.g.
// comparing whole reassembled phrases). strmet and other DistanceFunc
// implementations treat it as "large enough to never reject".
const unboundedMaxDistance = math.MaxInt32

// LookupCompound corrects input_string as a whole: it tokenizes on
// whitespace, then for each token decides between keeping it, replacing it
// with a close dictionary term, merging it into the previous token, or
// splitting it into two terms, whichever yields the smallest edit
// distance overall (ties broken toward higher frequency). It is the
// resolver for spacing mistakes a single-term Lookup cannot see: a missing
// space between two correct words, or a spurious space splitting one word
// in two.
func (idx *Index) LookupCompound(inputString string, editDistanceMax int) Suggestion {
	tokens := strings.Fields(inputString)
	if len(tokens) == 0 {
		return Suggestion{Term: "", Distance: 0, Count: 0}
	}

	parts := make([]Suggestion, 0, len(tokens))
	lastCombi := false

	for i, token := range tokens {
		cands := idx.Lookup(token, VerbosityTop, editDistanceMax)

		// Merge attempt: always tried before a split, since a missing
		// space is a single insertion, not a substitution.
		if i > 0 && !lastCombi {
			if merged, ok := idx.tryMerge(parts, tokens, i, cands, editDistanceMax); ok {
				parts[len(parts)-1] = merged
				lastCombi = true
				continue
			}
		}
		lastCombi = false

		// Never split a term already matched exactly, and never split a
		// single character: there is nothing smaller to split it into.
		if len(cands) > 0 && (cands[0].Distance == 0 || runeLen(token) == 1) {
			parts = append(parts, cands[0])
			continue
		}

		parts = append(parts, idx.bestSplit(token, cands, editDistanceMax))
	}

	return assembleCompound(parts, inputString, idx.distanceFn)
}

// tryMerge attempts §4.4 step 2: treat tokens[i-1] and tokens[i] as though
// the space between them were spurious. It reports the merged Suggestion
// and true when the merge beats keeping the two tokens split.
func (idx *Index) tryMerge(parts []Suggestion, tokens []string, i int, cands []Suggestion, editDistanceMax int) (Suggestion, bool) {
	combined := tokens[i-1] + tokens[i]
	combiCands := idx.Lookup(combined, VerbosityTop, editDistanceMax)
	if len(combiCands) == 0 {
		return Suggestion{}, false
	}

	best1 := parts[len(parts)-1]
	var best2 Suggestion
	if len(cands) > 0 {
		best2 = cands[0]
	} else {
		best2 = Suggestion{Term: tokens[i], Distance: editDistanceMax + 1, Count: 0}
	}

	original := tokens[i-1] + " " + tokens[i]
	corrected := best1.Term + " " + best2.Term
	// Unbounded: §4.4 step 2 and the Python original call this distance
	// with no cutoff, unlike the split comparison in bestSplit below. A
	// cutoff here would clamp dSplit and wrongly suppress merges whenever
	// the two single-token corrections reconstruct a phrase far from the
	// original.
	dSplit := idx.distanceFn(original, corrected, unboundedMaxDistance)
	if dSplit < 0 {
		dSplit = maxInt(runeLen(original), runeLen(corrected))
	}

	if dSplit > 0 && combiCands[0].Distance+1 < dSplit {
		merged := combiCands[0]
		merged.Distance++
		return merged, true
	}
	return Suggestion{}, false
}

// bestSplit implements §4.4 step 5: try every way of cutting token into two
// pieces, score each split candidate alongside the single-token correction
// (if any), and return whichever minimizes 2*distance - count.
func (idx *Index) bestSplit(token string, cands []Suggestion, editDistanceMax int) Suggestion {
	var splitCandidates []Suggestion
	if len(cands) > 0 {
		splitCandidates = append(splitCandidates, cands[0])
	}

	tokenLen := runeLen(token)
	if tokenLen > 1 {
		for j := 1; j < tokenLen; j++ {
			left := substring(token, 0, j)
			right := substring(token, j, tokenLen)

			leftCands := idx.Lookup(left, VerbosityTop, editDistanceMax)
			if len(leftCands) == 0 {
				continue
			}
			if len(cands) > 0 && cands[0].Term == leftCands[0].Term {
				// The single-token answer already dominates any split.
				break
			}

			rightCands := idx.Lookup(right, VerbosityTop, editDistanceMax)
			if len(rightCands) == 0 {
				continue
			}
			if len(cands) > 0 && cands[0].Term == rightCands[0].Term {
				break
			}

			term := leftCands[0].Term + " " + rightCands[0].Term
			distance := idx.distanceFn(token, term, editDistanceMax)
			if distance < 0 {
				distance = editDistanceMax + 1
			}
			count := leftCands[0].Count
			if rightCands[0].Count < count {
				count = rightCands[0].Count
			}
			splitCandidates = append(splitCandidates, Suggestion{Term: term, Distance: distance, Count: count})
			if distance == 1 {
				break
			}
		}
	}

	if len(splitCandidates) == 0 {
		return Suggestion{Term: token, Distance: editDistanceMax + 1, Count: 0}
	}

	best := splitCandidates[0]
	bestScore := splitScore(best)
	for _, sc := range splitCandidates[1:] {
		if score := splitScore(sc); score < bestScore {
			best = sc
			bestScore = score
		}
	}
	return best
}

func splitScore(s Suggestion) int64 {
	return 2*int64(s.Distance) - int64(s.Count)
}

// assembleCompound joins the resolved parts with single spaces and
// computes the final Candidate's distance against the original input and
// count as the minimum across parts.
func assembleCompound(parts []Suggestion, original string, distanceFn DistanceFunc) Suggestion {
	terms := make([]string, len(parts))
	count := uint64(math.MaxUint64)
	for i, p := range parts {
		terms[i] = p.Term
		if p.Count < count {
			count = p.Count
		}
	}

	term := strings.TrimSpace(strings.Join(terms, " "))
	distance := distanceFn(term, original, unboundedMaxDistance)
	if distance < 0 {
		distance = maxInt(runeLen(term), runeLen(original))
	}
	return Suggestion{Term: term, Distance: distance, Count: count}
}
