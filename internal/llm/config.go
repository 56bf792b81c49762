// Package llm provides the text generation client used for AI-assisted drafting.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short advisory answers
	TierLite ModelTier = "lite"
	// TierStandard is for drafting resume content
	TierStandard ModelTier = "standard"
	// TierAdvanced is for longer analyses such as job matching
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// DefaultTemperature keeps drafts varied without drifting off-topic
const DefaultTemperature float32 = 0.7

// Config holds the model configuration for the generator
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-flash",
		},
		Temperature: DefaultTemperature,
	}
}

// GetModel returns the model name for a given tier, falling back to the
// standard tier and then the lite tier.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config using model for every tier.
// An empty model leaves the config unchanged.
func (c *Config) WithModel(model string) *Config {
	next := &Config{
		Provider:    c.Provider,
		Models:      make(map[ModelTier]string, len(c.Models)),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	if model == "" {
		return next
	}
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		next.Models[tier] = model
	}
	return next
}
