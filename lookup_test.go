// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import "testing"

// newBonjourHello builds the dictionary used by spec §8's concrete
// scenario table.
func newBonjourHello(t *testing.T) *Index {
	t.Helper()
	idx, err := New(WithMaxEditDistance(2), WithPrefixLength(7), WithCountThreshold(1))
	if err != nil {
		t.Fatal(err)
	}
	idx.Insert("bonjour", 100)
	idx.Insert("hello", 50)
	return idx
}

func TestLookupExactMatch(t *testing.T) {
	idx := newBonjourHello(t)
	results := idx.Lookup("bonjour", VerbosityTop, 2)
	if len(results) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(results))
	}
	if results[0].Term != "bonjour" || results[0].Distance != 0 {
		t.Fatalf("expected {bonjour 0}, got %+v", results[0])
	}
}

func TestLookupMissingCharacter(t *testing.T) {
	idx := newBonjourHello(t)
	results := idx.Lookup("bonjur", VerbosityTop, 2)
	if len(results) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(results))
	}
	if results[0].Term != "bonjour" || results[0].Distance != 1 {
		t.Fatalf("expected {bonjour 1}, got %+v", results[0])
	}
}

func TestLookupTransposition(t *testing.T) {
	idx := newBonjourHello(t)
	results := idx.Lookup("bnojour", VerbosityTop, 2)
	if len(results) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(results))
	}
	if results[0].Term != "bonjour" || results[0].Distance != 1 {
		t.Fatalf("expected {bonjour 1} (Damerau transposition), got %+v", results[0])
	}
}

func TestLookupNoMatch(t *testing.T) {
	idx := newBonjourHello(t)
	results := idx.Lookup("xyz", VerbosityTop, 2)
	if len(results) != 0 {
		t.Fatalf("expected no matches, got %+v", results)
	}
}

// TestRanking is spec invariant 3: results are non-decreasing in distance,
// and ties are non-increasing in count.
func TestRanking(t *testing.T) {
	idx, err := New()
	if err != nil {
		t.Fatal(err)
	}
	idx.Insert("cat", 10)
	idx.Insert("car", 5)
	idx.Insert("can", 50)
	idx.Insert("cut", 1)

	results := idx.Lookup("cat", VerbosityAll, 2)
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Fatalf("distance decreased between index %d and %d: %+v", i-1, i, results)
		}
		if results[i].Distance == results[i-1].Distance && results[i].Count > results[i-1].Count {
			t.Fatalf("count increased within a distance tie between index %d and %d: %+v", i-1, i, results)
		}
	}
}

// TestExactMatchPrimacy is spec invariant 1: for every dictionary term w
// and every verbosity, lookup(w) returns term == w, distance == 0.
func TestExactMatchPrimacy(t *testing.T) {
	idx := newBonjourHello(t)
	for _, term := range []string{"bonjour", "hello"} {
		for _, v := range []Verbosity{VerbosityTop, VerbosityClosest, VerbosityAll} {
			results := idx.Lookup(term, v, 2)
			if len(results) == 0 {
				t.Fatalf("verbosity %d: no results for exact term %q", v, term)
			}
			if results[0].Term != term || results[0].Distance != 0 {
				t.Fatalf("verbosity %d: expected {%s 0} first, got %+v", v, term, results[0])
			}
		}
	}
}

func TestLookupEditDistanceZero(t *testing.T) {
	idx := newBonjourHello(t)
	results := idx.Lookup("bonjur", VerbosityTop, 0)
	if len(results) != 0 {
		t.Fatalf("expected no matches at edit distance 0, got %+v", results)
	}
}

func TestLookupRejectsEditDistanceAboveConfigured(t *testing.T) {
	idx := newBonjourHello(t)
	if got := idx.Lookup("bonjur", VerbosityTop, 3); got != nil {
		t.Fatalf("expected nil for editDistanceMax exceeding the configured maximum, got %+v", got)
	}
}

func TestLookupVerbosityAllFindsMoreThanTop(t *testing.T) {
	idx, err := New()
	if err != nil {
		t.Fatal(err)
	}
	idx.Insert("cat", 10)
	idx.Insert("bat", 5)
	idx.Insert("cot", 3)

	top := idx.Lookup("cat", VerbosityTop, 2)
	all := idx.Lookup("cat", VerbosityAll, 2)
	if len(top) != 1 {
		t.Fatalf("expected exactly one VerbosityTop result, got %d", len(top))
	}
	if len(all) <= len(top) {
		t.Fatalf("expected VerbosityAll to find more results than VerbosityTop, got %+v", all)
	}
}

func TestLookupConfusables(t *testing.T) {
	idx, err := New(WithConfusables(true))
	if err != nil {
		t.Fatal(err)
	}
	idx.Insert("paypal", 1)

	// Cyrillic "а" (U+0430) in place of Latin "a" - a classic homoglyph
	// attack string that shares paypal's confusable skeleton.
	results := idx.Lookup("pаypal", VerbosityTop, 2)
	found := false
	for _, r := range results {
		if r.Term == "paypal" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the confusable pre-pass to surface paypal, got %+v", results)
	}
}
