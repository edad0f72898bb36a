package scheduler

// Config holds configuration for the periodic integration runs.
type Config struct {
	// IntervalMinutes is the cadence between runs.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"15"`
	// RunOnStart triggers one run immediately when the scheduler starts.
	RunOnStart bool `mapstructure:"run_on_start" default:"true"`
}
