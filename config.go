// Copyright (c) 2026 The gosymspell Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in
// the LICENSE file.

package spell

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	yaml "gopkg.in/yaml.v2"
)

// Config is the YAML-decodable configuration for an Index, covering the
// same knobs as the functional Options.
type Config struct {
	MaxEditDistance int  `mapstructure:"max_dictionary_edit_distance" yaml:"max_dictionary_edit_distance"`
	PrefixLength    int  `mapstructure:"prefix_length" yaml:"prefix_length"`
	CountThreshold  int  `mapstructure:"count_threshold" yaml:"count_threshold"`
	UseConfusables  bool `mapstructure:"use_confusables" yaml:"use_confusables"`
}

// DefaultConfig returns the same defaults New applies when no Options are
// given.
func DefaultConfig() Config {
	return Config{
		MaxEditDistance: defaultMaxEditDistance,
		PrefixLength:    defaultPrefixLength,
		CountThreshold:  defaultCountThreshold,
	}
}

// LoadConfig reads a YAML configuration file at path and decodes it into a
// Config. The file is parsed in two stages, first into a generic
// map[string]interface{} via yaml.v2, then decoded into the typed struct
// via mapstructure, so that unknown keys are caught by
// mapstructure.ErrorUnused rather than silently ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrIO, err)
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if generic == nil {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := decoder.Decode(generic); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return cfg, nil
}

// NewFromConfig builds an Index from a Config, optionally overriding the
// distance function (pass nil to keep DefaultDistanceFunc).
func NewFromConfig(cfg Config, distanceFn DistanceFunc) (*Index, error) {
	opts := []Option{
		WithMaxEditDistance(cfg.MaxEditDistance),
		WithPrefixLength(cfg.PrefixLength),
		WithCountThreshold(cfg.CountThreshold),
		WithConfusables(cfg.UseConfusables),
	}
	if distanceFn != nil {
		opts = append(opts, WithDistanceFunc(distanceFn))
	}
	return New(opts...)
}
