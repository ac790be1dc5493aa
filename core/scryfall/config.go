package scryfall

// Config holds configuration for the Scryfall API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.scryfall.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// MaxRetries is the number of attempts for retryable responses (429, 5xx).
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// BackoffMillis is the base backoff between retries; attempt N waits N times this.
	BackoffMillis int `mapstructure:"backoff_millis" default:"1000"`
}
