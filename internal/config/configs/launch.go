package configs

import "time"

// Launch holds tuning knobs for the launch pipeline: retry behaviour for
// external calls, media readiness polling, queue advancement and the
// allowed target countries.
type Launch struct {
	// RetryAttempts is the maximum number of attempts for a retryable
	// provider call.
	RetryAttempts int `env:"RETRY_ATTEMPTS" envDefault:"3"`
	// BackoffBase is the delay before the first retry; it doubles on each
	// subsequent attempt up to BackoffCap.
	BackoffBase time.Duration `env:"BACKOFF_BASE" envDefault:"1s"`
	BackoffCap  time.Duration `env:"BACKOFF_CAP" envDefault:"30s"`

	// CallTimeout bounds a single external provider call: ad platform,
	// affiliate network or content generator.
	CallTimeout time.Duration `env:"CALL_TIMEOUT" envDefault:"30s"`

	// MediaPollInterval and MediaPollTimeout control how long the launcher
	// waits for uploaded media to finish processing. The timeout also
	// bounds a single image or video generation call.
	MediaPollInterval time.Duration `env:"MEDIA_POLL_INTERVAL" envDefault:"2s"`
	MediaPollTimeout  time.Duration `env:"MEDIA_POLL_TIMEOUT" envDefault:"2m"`

	// RequeueOnEarlyFailure sends a campaign back to the tail of the queue
	// when validation or affiliate setup fails, instead of marking it
	// failed outright.
	RequeueOnEarlyFailure bool `env:"REQUEUE_ON_EARLY_FAILURE" envDefault:"true"`

	// AdvanceInterval is how often the orchestrator checks whether the
	// next queued campaign can start.
	AdvanceInterval time.Duration `env:"ADVANCE_INTERVAL" envDefault:"5s"`

	// AllowedCountries restricts campaign targeting. Comma-separated
	// ISO 3166-1 alpha-2 codes.
	AllowedCountries []string `env:"ALLOWED_COUNTRIES" envDefault:"US,GB,DE,FR,ES,IT,NL,PL,BR,MX,CA,AU"`

	// Sandbox swaps the real ad platform, affiliate network and content
	// generator adapters for in-memory stand-ins.
	Sandbox bool `env:"SANDBOX" envDefault:"false"`
}
