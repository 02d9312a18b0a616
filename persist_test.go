// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import (
	"bytes"
	"testing"
)

// TestSaveLoadRoundTrip is spec invariant 7: save followed by load into a
// fresh Index yields identical lookup results for every query.
func TestSaveLoadRoundTrip(t *testing.T) {
	idx1 := newBonjourHello(t)

	var buf bytes.Buffer
	if err := idx1.Save(&buf, true); err != nil {
		t.Fatal(err)
	}

	idx2, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := idx2.Load(&buf, true); err != nil {
		t.Fatal(err)
	}

	for _, query := range []string{"bonjour", "bonjur", "hello", "xyz"} {
		want := idx1.Lookup(query, VerbosityAll, 2)
		got := idx2.Lookup(query, VerbosityAll, 2)
		if len(want) != len(got) {
			t.Fatalf("query %q: expected %d results, got %d (%+v vs %+v)", query, len(want), len(got), want, got)
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("query %q: result %d differs: %+v vs %+v", query, i, want[i], got[i])
			}
		}
	}
}

func TestSaveLoadUncompressed(t *testing.T) {
	idx1 := newBonjourHello(t)

	var buf bytes.Buffer
	if err := idx1.Save(&buf, false); err != nil {
		t.Fatal(err)
	}

	idx2, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := idx2.Load(&buf, false); err != nil {
		t.Fatal(err)
	}

	if count, ok := idx2.GetEntry("bonjour"); !ok || count != 100 {
		t.Fatalf("expected bonjour=100 after an uncompressed round trip, got %d ok=%v", count, ok)
	}
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	idx, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Load(bytes.NewReader([]byte("not json")), false); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}
