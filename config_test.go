// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	const yaml = `
max_dictionary_edit_distance: 3
prefix_length: 8
count_threshold: 2
use_confusables: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxEditDistance != 3 || cfg.PrefixLength != 8 || cfg.CountThreshold != 2 || !cfg.UseConfusables {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("not_a_real_field: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for an unrecognized config key")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEditDistance = 1
	cfg.PrefixLength = 4

	idx, err := NewFromConfig(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	idx.Insert("example", 1)

	if got := idx.Lookup("eample", VerbosityTop, 2); got != nil {
		t.Fatalf("expected nil for editDistanceMax exceeding the configured max edit distance of 1, got %+v", got)
	}
	results := idx.Lookup("eample", VerbosityTop, 1)
	if len(results) != 1 || results[0].Term != "example" {
		t.Fatalf("expected one match for example, got %+v", results)
	}
}
