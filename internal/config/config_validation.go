package config

// validate checks the merged [StructuredConfig] before it is projected into
// runtime views. Cross-source invariants live here; per-view validation
// (defaults, required fields) happens in [ClientConfig.validate].
func (c *StructuredConfig) validate() error {
	return nil
}
