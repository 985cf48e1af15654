// Package engine provides configuration options for the engine service.
package engine

import (
	"github.com/spf13/pflag"

	"github.com/kart-io/ai-engine/pkg/options"
)

var _ options.IOptions = (*Options)(nil)

// Options contains engine behavior configuration.
type Options struct {
	// StripVowels enables the vowel-stripped output field on input responses.
	StripVowels bool `json:"strip-vowels" mapstructure:"strip-vowels"`
}

// NewOptions creates a new Options with default values.
func NewOptions() *Options {
	return &Options{
		StripVowels: true,
	}
}

// AddFlags adds flags for engine options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.BoolVar(&o.StripVowels, options.Join(prefixes...)+"engine.strip-vowels", o.StripVowels, "Include the vowel-stripped output field in input responses.")
}

// Validate validates the engine options.
func (o *Options) Validate() []error {
	return nil
}

// Complete completes the engine options with defaults.
func (o *Options) Complete() error {
	return nil
}
