// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import "github.com/eskriett/confusables"

// confusableSkeleton normalizes term to its Unicode confusable skeleton, the
// form used to key idx.skeletons.
func confusableSkeleton(term string) string {
	return confusables.Skeleton(term)
}

// confusableCandidates returns the dictionary words, other than term
// itself, whose Unicode confusable skeleton matches term's skeleton. It is
// only consulted when the Index was built WithConfusables(true); it costs
// nothing when disabled since no skeletons are recorded at Insert time.
func (idx *Index) confusableCandidates(term string) []string {
	if !idx.useConfusables {
		return nil
	}
	sk := confusableSkeleton(term)
	matches := idx.skeletons[sk]
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m != term {
			out = append(out, m)
		}
	}
	return out
}
