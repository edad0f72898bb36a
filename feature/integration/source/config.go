package source

// Config holds configuration for the remote HR API client.
// It is threaded in explicitly at construction; the client never reads
// ambient environment state.
type Config struct {
	// BaseURL is the root of the data provider API.
	BaseURL string `mapstructure:"base_url" default:""`
	// AuthHeader is the literal Authorization header value.
	AuthHeader string `mapstructure:"auth_header" default:""`
	// Cookie is the literal Cookie header value (session).
	Cookie string `mapstructure:"cookie" default:""`
	// View is the dataset view name appended to the fetch path.
	View string `mapstructure:"view" default:"view_colaboradores_teste_tecnico"`
	// TimeoutSeconds bounds a single fetch attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxAttempts is the total number of fetch attempts before giving up.
	MaxAttempts int `mapstructure:"max_attempts" default:"3"`
	// RetryDelaySeconds is the fixed wait between attempts. Deliberately a
	// flat delay, no backoff and no jitter.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" default:"5"`
}
