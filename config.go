package litregex

// Config bounds how much work Compile is willing to do, mirroring how the
// sibling coregex engine's meta.Config gates its own compiler before it
// touches the expensive stages.
type Config struct {
	// MaxWords caps the number of input words. Zero is out of range and is
	// rejected by Validate.
	MaxWords int

	// MaxTotalCodeUnits caps the sum of UTF-16 code unit counts across all
	// input words, bounding the size of the pseudo-prefix-trie regardless
	// of how that length is distributed across words.
	MaxTotalCodeUnits int
}

// DefaultConfig returns the limits Compile uses when called without an
// explicit Config.
func DefaultConfig() Config {
	return Config{
		MaxWords:          100_000,
		MaxTotalCodeUnits: 10_000_000,
	}
}

// Validate checks that c's fields are within supported ranges.
//
// Valid ranges:
//   - MaxWords: 1 to 10,000,000
//   - MaxTotalCodeUnits: 1 to 1,000,000,000
func (c Config) Validate() error {
	if c.MaxWords < 1 || c.MaxWords > 10_000_000 {
		return &ConfigError{
			Field:   "MaxWords",
			Message: "must be between 1 and 10,000,000",
		}
	}
	if c.MaxTotalCodeUnits < 1 || c.MaxTotalCodeUnits > 1_000_000_000 {
		return &ConfigError{
			Field:   "MaxTotalCodeUnits",
			Message: "must be between 1 and 1,000,000,000",
		}
	}
	return nil
}
